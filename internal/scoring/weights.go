// Package scoring computes the four composite student scores and their
// breakdown from stored profile fields and cached platform signals. All
// computation here is pure; persistence is the caller's concern.
package scoring

// CappedWeight is one capped linear contribution: min(Cap, value*Mul).
type CappedWeight struct {
	Cap float64
	Mul float64
}

// Apply returns the capped contribution for a raw signal value.
func (w CappedWeight) Apply(value float64) float64 {
	scaled := value * w.Mul
	if scaled > w.Cap {
		return w.Cap
	}
	return scaled
}

// The weights and caps below are score contracts, not tuning knobs.
// Deviations must be documented.
var (
	// Coding Skill Index contributions.
	codingLeetCodeSolved = CappedWeight{Cap: 32, Mul: 1 / 4.5}
	codingLeetCodeMedium = CappedWeight{Cap: 11, Mul: 0.55}
	codingLeetCodeHard   = CappedWeight{Cap: 9, Mul: 1.1}
	codingGitHubRepos    = CappedWeight{Cap: 18, Mul: 1.7}
	codingGitHubRecent   = CappedWeight{Cap: 11, Mul: 1.7}
	codingGitHubStars    = CappedWeight{Cap: 7, Mul: 1 / 4.5}
	codingLeetCodeStar   = CappedWeight{Cap: 5, Mul: 1.3}

	// Authenticity Score contributions.
	authGitHubRepos    = CappedWeight{Cap: 22, Mul: 1.7}
	authGitHubStars    = CappedWeight{Cap: 18, Mul: 1 / 3.5}
	authGitHubRecent   = CappedWeight{Cap: 13, Mul: 1.7}
	authLeetCodeSolved = CappedWeight{Cap: 18, Mul: 1 / 5.5}
	authPlatformCount  = CappedWeight{Cap: 10, Mul: 2}

	// Communication Score contributions.
	commSkillsBreadth = CappedWeight{Cap: 20, Mul: 2}
)

// Fixed bonuses and blend weights.
const (
	// finalScale is applied to every headline score before rounding.
	finalScale = 0.92

	// headlineCap bounds every headline score.
	headlineCap = 100

	phonePresenceBonus   = 10
	collegePresenceBonus = 10
	bothPlatformsBonus   = 5

	linkedInRichnessCap    = 50
	commLinkedInCap        = 40
	authLinkedInCap        = 9
	authLinkedInDivisor    = 5.5
	originalityBonusWeight = 8

	languageMatchCap      = 10
	languageMatchPerSkill = 2

	placementCodingWeight        = 0.55
	placementCommunicationWeight = 0.20
	placementAuthenticityWeight  = 0.25
)

// cgpaBonus tiers: the listed bonus applies at and above the threshold.
var cgpaBonusTiers = []struct {
	Threshold float64
	Bonus     float64
}{
	{9, 10},
	{8, 7},
	{7, 4},
}

// cgpaFloorBonus applies to any reported CGPA below the lowest tier.
const cgpaFloorBonus = 2

// skillLanguageMap is the ordered keyword table behind the language/skill
// overlap bonus. The first matching entry wins per declared skill.
var skillLanguageMap = []struct {
	Keyword   string
	Languages []string
}{
	{"react", []string{"JavaScript", "TypeScript"}},
	{"node", []string{"JavaScript", "TypeScript"}},
	{"python", []string{"Python"}},
	{"django", []string{"Python"}},
	{"flask", []string{"Python"}},
	{"java", []string{"Java"}},
	{"spring", []string{"Java"}},
	{"c++", []string{"C++"}},
	{"c", []string{"C"}},
	{"javascript", []string{"JavaScript"}},
	{"typescript", []string{"TypeScript"}},
	{"sql", []string{"SQL"}},
	{"aws", []string{"Python", "JavaScript", "TypeScript"}},
}

// LinkedIn richness sub-formula thresholds.
const (
	richnessLinkBonus = 10

	richnessHeadlineMinLen = 12
	richnessHeadlineBonus  = 6

	richnessAboutMinLen = 60
	richnessAboutBonus  = 10

	richnessExperienceBonus      = 8
	richnessExperienceExtraMin   = 3
	richnessExperienceExtraBonus = 4

	richnessSkillMin        = 5
	richnessSkillBonus      = 8
	richnessSkillExtraMin   = 15
	richnessSkillExtraBonus = 4

	richnessCertBonus      = 6
	richnessCertExtraMin   = 3
	richnessCertExtraBonus = 4
)
