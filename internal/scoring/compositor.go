package scoring

import (
	"math"
	"strings"

	"github.com/skillsence/skillverify/internal/types"
)

// Compute derives the four headline scores plus their contribution
// breakdowns from a profile and whatever platform stats it carries.
// Absent or failed platform blobs contribute zero, never an error.
//
// Placement readiness blends the three raw component sums before the final
// scale is applied, so the headline scores cannot be recombined to
// reproduce it exactly.
func Compute(user *types.UserProfile) (types.ScoreSet, types.Breakdown) {
	gh := githubSignals(user)
	lc := leetcodeSignals(user)
	richness := LinkedInRichness(user)
	skills := types.SplitSkills(user.StudentSkills)

	codingPoints := codingContributions(gh, lc, skills)
	commParts := communicationContributions(user, richness, len(skills))
	authPoints := authenticityContributions(user, gh, lc, richness)

	codingRaw := sum(codingPoints)
	commRaw := sum(commParts)
	authRaw := sum(authPoints)

	bonus := CGPABonus(user.CGPA)
	placementParts := map[string]float64{
		"coding_weighted":        codingRaw * placementCodingWeight,
		"communication_weighted": commRaw * placementCommunicationWeight,
		"authenticity_weighted":  authRaw * placementAuthenticityWeight,
		"cgpa_bonus":             bonus,
	}
	placementRaw := sum(placementParts)

	scores := types.ScoreSet{
		CodingSkillIndex:   finalize(codingRaw),
		CommunicationScore: finalize(commRaw),
		AuthenticityScore:  finalize(authRaw),
		PlacementReady:     finalize(placementRaw),
	}

	codingPoints["leetcode_solved_raw"] = lc.solved
	codingPoints["leetcode_easy_raw"] = lc.easy
	codingPoints["leetcode_medium_raw"] = lc.medium
	codingPoints["leetcode_hard_raw"] = lc.hard
	authPoints["github_forked_raw"] = gh.forked
	authPoints["github_original_raw"] = gh.original

	breakdown := types.Breakdown{
		CodingSkillIndex:   codingPoints,
		CommunicationScore: commParts,
		AuthenticityScore:  authPoints,
		PlacementReady:     placementParts,
	}
	return scores, breakdown
}

// githubFacts is the subset of GitHub stats the formulas read.
type githubFacts struct {
	present   bool
	repos     float64
	recent    float64
	stars     float64
	forkRatio float64
	forked    float64
	original  float64
	languages []string
}

// leetcodeFacts is the subset of LeetCode stats the formulas read.
type leetcodeFacts struct {
	solved     float64
	easy       float64
	medium     float64
	hard       float64
	starRating float64
}

func githubSignals(user *types.UserProfile) githubFacts {
	if user.GitHubStats.State != types.StatPresent || user.GitHubStats.Stats == nil {
		return githubFacts{}
	}
	repos := user.GitHubStats.Stats.Repos
	return githubFacts{
		present:   true,
		repos:     float64(repos.Count),
		recent:    float64(repos.RecentRepos),
		stars:     float64(repos.Stars),
		forkRatio: repos.ForkRatio,
		forked:    float64(repos.Forked),
		original:  float64(repos.Original),
		languages: repos.Languages,
	}
}

func leetcodeSignals(user *types.UserProfile) leetcodeFacts {
	if user.LeetCodeStats.State != types.StatPresent || user.LeetCodeStats.Stats == nil {
		return leetcodeFacts{}
	}
	stats := user.LeetCodeStats.Stats
	return leetcodeFacts{
		solved:     float64(stats.Solved.All),
		easy:       float64(stats.Solved.Easy),
		medium:     float64(stats.Solved.Medium),
		hard:       float64(stats.Solved.Hard),
		starRating: stats.Profile.StarRating,
	}
}

func codingContributions(gh githubFacts, lc leetcodeFacts, skills []string) map[string]float64 {
	return map[string]float64{
		"leetcode_solved_points": codingLeetCodeSolved.Apply(lc.solved),
		"leetcode_medium_points": codingLeetCodeMedium.Apply(lc.medium),
		"leetcode_hard_points":   codingLeetCodeHard.Apply(lc.hard),
		"github_repos":           codingGitHubRepos.Apply(gh.repos),
		"github_recent":          codingGitHubRecent.Apply(gh.recent),
		"github_stars":           codingGitHubStars.Apply(gh.stars),
		"language_match":         LanguageMatchBonus(skills, gh.languages),
		"leetcode_star":          codingLeetCodeStar.Apply(lc.starRating),
	}
}

func communicationContributions(user *types.UserProfile, richness float64, skillCount int) map[string]float64 {
	parts := map[string]float64{
		"linkedin_profile": capAt(richness, commLinkedInCap),
		"phone_presence":   0,
		"skills_breadth":   commSkillsBreadth.Apply(float64(skillCount)),
		"college_presence": 0,
	}
	if user.PhoneNumber != "" {
		parts["phone_presence"] = phonePresenceBonus
	}
	if user.College != "" {
		parts["college_presence"] = collegePresenceBonus
	}
	return parts
}

func authenticityContributions(user *types.UserProfile, gh githubFacts, lc leetcodeFacts, richness float64) map[string]float64 {
	// The originality bonus only exists once real repo stats are in hand;
	// an absent or failed fetch must not read as a zero fork ratio.
	originality := 0.0
	if gh.present {
		originality = 1 - gh.forkRatio
		if originality < 0 {
			originality = 0
		}
	}
	parts := map[string]float64{
		"github_repos":          authGitHubRepos.Apply(gh.repos),
		"github_stars":          authGitHubStars.Apply(gh.stars),
		"github_recent":         authGitHubRecent.Apply(gh.recent),
		"leetcode_solved":       authLeetCodeSolved.Apply(lc.solved),
		"github_leetcode_combo": 0,
		"linkedin_profile":      capAt(math.Round(richness/authLinkedInDivisor), authLinkedInCap),
		"platform_count":        authPlatformCount.Apply(float64(platformLinkCount(user))),
		"github_originality":    round2(originality * originalityBonusWeight),
	}
	if user.GitHubLink != "" && user.LeetCodeLink != "" {
		parts["github_leetcode_combo"] = bothPlatformsBonus
	}
	return parts
}

// LinkedInRichness scores how filled-in the stored LinkedIn profile looks,
// capped at 50. Each signal is a threshold on a stored field.
func LinkedInRichness(user *types.UserProfile) float64 {
	score := 0.0
	if user.LinkedInLink != "" {
		score += richnessLinkBonus
	}
	if len(strings.TrimSpace(user.LinkedInHeadline)) >= richnessHeadlineMinLen {
		score += richnessHeadlineBonus
	}
	if len(strings.TrimSpace(user.LinkedInAbout)) >= richnessAboutMinLen {
		score += richnessAboutBonus
	}
	if user.LinkedInExperienceCount >= 1 {
		score += richnessExperienceBonus
	}
	if user.LinkedInExperienceCount >= richnessExperienceExtraMin {
		score += richnessExperienceExtraBonus
	}
	if user.LinkedInSkillCount >= richnessSkillMin {
		score += richnessSkillBonus
	}
	if user.LinkedInSkillCount >= richnessSkillExtraMin {
		score += richnessSkillExtraBonus
	}
	if user.LinkedInCertCount >= 1 {
		score += richnessCertBonus
	}
	if user.LinkedInCertCount >= richnessCertExtraMin {
		score += richnessCertExtraBonus
	}
	return capAt(score, linkedInRichnessCap)
}

// LanguageMatchBonus awards 2 points, up to 10, for each declared skill
// with a keyword whose mapped languages intersect the detected GitHub
// language set. The keyword table is consulted in order and the first
// keyword that both occurs in the skill and intersects wins.
func LanguageMatchBonus(skills, detected []string) float64 {
	if len(skills) == 0 || len(detected) == 0 {
		return 0
	}
	have := make(map[string]bool, len(detected))
	for _, lang := range detected {
		have[lang] = true
	}
	matched := 0
	for _, skill := range skills {
		key := strings.TrimSpace(strings.ToLower(skill))
		for _, entry := range skillLanguageMap {
			if !strings.Contains(key, entry.Keyword) {
				continue
			}
			hit := false
			for _, lang := range entry.Languages {
				if have[lang] {
					hit = true
					break
				}
			}
			if hit {
				matched++
				break
			}
		}
	}
	return capAt(float64(matched)*languageMatchPerSkill, languageMatchCap)
}

// CGPABonus maps a reported CGPA onto the placement bonus tiers. A missing
// CGPA earns nothing; any reported value earns at least the floor bonus.
func CGPABonus(cgpa *float64) float64 {
	if cgpa == nil {
		return 0
	}
	for _, tier := range cgpaBonusTiers {
		if *cgpa >= tier.Threshold {
			return tier.Bonus
		}
	}
	return cgpaFloorBonus
}

// platformLinkCount counts non-empty profile links across all platforms.
func platformLinkCount(user *types.UserProfile) int {
	count := 0
	for _, link := range user.PlatformLinks() {
		if link != "" {
			count++
		}
	}
	return count
}

func finalize(raw float64) int {
	scaled := int(math.Round(raw * finalScale))
	if scaled > headlineCap {
		return headlineCap
	}
	return scaled
}

func capAt(value, limit float64) float64 {
	if value > limit {
		return limit
	}
	return value
}

// sum totals the scoring contributions, skipping the raw echo keys that
// exist only for report rendering.
func sum(parts map[string]float64) float64 {
	total := 0.0
	for key, value := range parts {
		if strings.HasSuffix(key, "_raw") {
			continue
		}
		total += value
	}
	return total
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
