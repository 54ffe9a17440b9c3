package interview

import (
	"math/rand"
	"strings"

	"github.com/skillsence/skillverify/internal/types"
)

// difficultyTargets is the per-band question count a selection aims for.
// The bands intentionally over-provision; the shuffled result is trimmed
// to the requested total.
var difficultyTargets = []struct {
	difficulty types.Difficulty
	count      int
}{
	{types.DifficultyEasy, 3},
	{types.DifficultyMedium, 4},
	{types.DifficultyHard, 3},
}

// questionBank returns the built-in technical question pool. IDs are
// stable so transcripts stay traceable across sessions.
func questionBank() []types.Question {
	return []types.Question{
		{ID: "1", Question: "Explain the difference between REST and GraphQL.", Difficulty: types.DifficultyEasy, Tags: []string{"api", "backend"}},
		{ID: "2", Question: "What is a primary key and why is it important?", Difficulty: types.DifficultyEasy, Tags: []string{"sql", "database"}},
		{ID: "3", Question: "How does React manage state updates?", Difficulty: types.DifficultyEasy, Tags: []string{"react", "frontend", "javascript"}},
		{ID: "4", Question: "What is the purpose of indexes in databases?", Difficulty: types.DifficultyMedium, Tags: []string{"sql", "database"}},
		{ID: "5", Question: "Describe how JWT authentication works.", Difficulty: types.DifficultyMedium, Tags: []string{"auth", "backend"}},
		{ID: "6", Question: "What are Python generators and when would you use them?", Difficulty: types.DifficultyMedium, Tags: []string{"python"}},
		{ID: "7", Question: "How do you prevent SQL injection?", Difficulty: types.DifficultyEasy, Tags: []string{"security", "backend"}},
		{ID: "8", Question: "Explain the virtual DOM and its benefits.", Difficulty: types.DifficultyMedium, Tags: []string{"react", "frontend"}},
		{ID: "9", Question: "How would you optimize a slow Django view?", Difficulty: types.DifficultyHard, Tags: []string{"django", "backend"}},
		{ID: "10", Question: "Describe the time complexity of binary search.", Difficulty: types.DifficultyEasy, Tags: []string{"algorithms"}},
		{ID: "11", Question: "What is the CAP theorem and why does it matter?", Difficulty: types.DifficultyHard, Tags: []string{"system", "backend"}},
		{ID: "12", Question: "How does caching improve performance? Give an example.", Difficulty: types.DifficultyMedium, Tags: []string{"system", "backend"}},
		{ID: "13", Question: "Explain the difference between PUT and PATCH.", Difficulty: types.DifficultyEasy, Tags: []string{"api", "backend"}},
		{ID: "14", Question: "What are database transactions and ACID properties?", Difficulty: types.DifficultyMedium, Tags: []string{"sql", "database"}},
		{ID: "15", Question: "How would you design a rate limiter for an API?", Difficulty: types.DifficultyHard, Tags: []string{"system", "backend"}},
		{ID: "16", Question: "Describe the lifecycle methods or hooks in React.", Difficulty: types.DifficultyMedium, Tags: []string{"react", "frontend"}},
		{ID: "17", Question: "What is the difference between synchronous and asynchronous programming?", Difficulty: types.DifficultyEasy, Tags: []string{"general"}},
		{ID: "18", Question: "Explain dependency injection and its benefits.", Difficulty: types.DifficultyMedium, Tags: []string{"backend", "general"}},
		{ID: "19", Question: "How do you handle pagination in an API?", Difficulty: types.DifficultyMedium, Tags: []string{"api", "backend"}},
		{ID: "20", Question: "What are webhooks and when would you use them?", Difficulty: types.DifficultyEasy, Tags: []string{"api"}},
		{ID: "21", Question: "Explain the difference between threads and processes.", Difficulty: types.DifficultyMedium, Tags: []string{"system"}},
		{ID: "22", Question: "How would you structure a scalable file upload system?", Difficulty: types.DifficultyHard, Tags: []string{"system", "backend"}},
		{ID: "23", Question: "What is CORS and how do you configure it safely?", Difficulty: types.DifficultyEasy, Tags: []string{"security", "frontend", "backend"}},
		{ID: "24", Question: "Describe how you would model a many-to-many relationship.", Difficulty: types.DifficultyEasy, Tags: []string{"database"}},
		{ID: "25", Question: "Explain eventual consistency with an example.", Difficulty: types.DifficultyHard, Tags: []string{"system"}},
		{ID: "26", Question: "What is memoization and when is it useful?", Difficulty: types.DifficultyMedium, Tags: []string{"algorithms"}},
		{ID: "27", Question: "How do you secure secrets in production?", Difficulty: types.DifficultyMedium, Tags: []string{"security"}},
		{ID: "28", Question: "Explain the difference between SSR and CSR.", Difficulty: types.DifficultyMedium, Tags: []string{"frontend"}},
		{ID: "29", Question: "How would you debug a memory leak in a Node.js app?", Difficulty: types.DifficultyHard, Tags: []string{"javascript", "backend"}},
		{ID: "30", Question: "Describe how you would design a search feature.", Difficulty: types.DifficultyMedium, Tags: []string{"system", "backend"}},
	}
}

// introQuestions opens every session regardless of how the technical
// questions were sourced.
func introQuestions() []types.Question {
	return []types.Question{
		{ID: "intro-1", Question: "Welcome! Please tell me your full name and the role you are targeting.", Difficulty: types.DifficultyEasy, Tags: []string{"intro"}},
		{ID: "intro-2", Question: "Give a brief introduction about yourself, including your current education or experience.", Difficulty: types.DifficultyEasy, Tags: []string{"intro"}},
		{ID: "intro-3", Question: "Walk me through one project you are proud of and your specific contributions.", Difficulty: types.DifficultyEasy, Tags: []string{"intro"}},
	}
}

// selectFromBank picks up to total questions tailored to the user's
// skills. Questions whose tags intersect the skill set are preferred;
// when nothing matches the whole bank is eligible. Untagged questions
// always match.
func selectFromBank(skills []string, total int, rng *rand.Rand) []types.Question {
	bank := questionBank()

	skillSet := make(map[string]bool, len(skills))
	for _, name := range skills {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			skillSet[name] = true
		}
	}

	matches := func(q types.Question) bool {
		if len(q.Tags) == 0 {
			return true
		}
		for _, tag := range q.Tags {
			if skillSet[tag] {
				return true
			}
		}
		return false
	}

	filtered := make([]types.Question, 0, len(bank))
	for _, q := range bank {
		if matches(q) {
			filtered = append(filtered, q)
		}
	}
	if len(filtered) == 0 {
		filtered = bank
	}

	chosen := make([]types.Question, 0, total)
	chosenIDs := make(map[string]bool)
	for _, target := range difficultyTargets {
		pool := make([]types.Question, 0, len(filtered))
		for _, q := range filtered {
			if q.Difficulty == target.difficulty {
				pool = append(pool, q)
			}
		}
		rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		for i := 0; i < len(pool) && i < target.count; i++ {
			chosen = append(chosen, pool[i])
			chosenIDs[pool[i].ID] = true
		}
	}

	if len(chosen) < total {
		remaining := make([]types.Question, 0, len(filtered))
		for _, q := range filtered {
			if !chosenIDs[q.ID] {
				remaining = append(remaining, q)
			}
		}
		rng.Shuffle(len(remaining), func(i, j int) { remaining[i], remaining[j] = remaining[j], remaining[i] })
		for _, q := range remaining {
			if len(chosen) >= total {
				break
			}
			chosen = append(chosen, q)
		}
	}

	for len(chosen) < total {
		chosen = append(chosen, bank[rng.Intn(len(bank))])
	}

	rng.Shuffle(len(chosen), func(i, j int) { chosen[i], chosen[j] = chosen[j], chosen[i] })
	if len(chosen) > total {
		chosen = chosen[:total]
	}
	return chosen
}
