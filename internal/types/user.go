package types

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role identifies the account type of a user profile.
type Role string

// Account roles.
const (
	RoleStudent    Role = "student"
	RoleUniversity Role = "university"
	RoleRecruiter  Role = "recruiter"
)

// UserProfile is the external user record consumed by the engine. The user
// store owns identity and auth; this engine mutates only the cached stat
// blobs, the analysis timestamp, and the verification flag.
type UserProfile struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Role     Role      `json:"role"`

	FullName    string `json:"full_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	College     string `json:"college,omitempty"`
	Course      string `json:"course,omitempty"`
	Branch      string `json:"branch,omitempty"`
	YearOfStudy string `json:"year_of_study,omitempty"`

	// CGPA is nil when the student has not reported one.
	CGPA *float64 `json:"cgpa,omitempty"`

	// StudentSkills is the comma-separated declared skill list.
	StudentSkills string `json:"student_skills,omitempty"`

	GitHubLink     string `json:"github_link,omitempty"`
	LeetCodeLink   string `json:"leetcode_link,omitempty"`
	LinkedInLink   string `json:"linkedin_link,omitempty"`
	CodeChefLink   string `json:"codechef_link,omitempty"`
	HackerRankLink string `json:"hackerrank_link,omitempty"`
	CodeforcesLink string `json:"codeforces_link,omitempty"`
	GFGLink        string `json:"gfg_link,omitempty"`

	LinkedInHeadline        string `json:"linkedin_headline,omitempty"`
	LinkedInAbout           string `json:"linkedin_about,omitempty"`
	LinkedInExperienceCount int    `json:"linkedin_experience_count"`
	LinkedInSkillCount      int    `json:"linkedin_skill_count"`
	LinkedInCertCount       int    `json:"linkedin_cert_count"`

	GitHubStats   GitHubBlob    `json:"github_stats"`
	LeetCodeStats LeetCodeBlob  `json:"leetcode_stats"`
	LinkedInStats LinkedInStats `json:"linkedin_stats"`

	LastAnalyzedAt  *time.Time `json:"last_analyzed_at,omitempty"`
	ProfileVerified bool       `json:"profile_verified"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SplitSkills parses the comma-separated declared skill list, dropping
// empty entries.
func SplitSkills(skillsText string) []string {
	if skillsText == "" {
		return nil
	}
	var skills []string
	for _, part := range strings.Split(skillsText, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			skills = append(skills, part)
		}
	}
	return skills
}

// PlatformLinks returns the seven optional platform links in their fixed
// order.
func (u *UserProfile) PlatformLinks() []string {
	return []string{
		u.GitHubLink,
		u.LeetCodeLink,
		u.LinkedInLink,
		u.CodeChefLink,
		u.HackerRankLink,
		u.CodeforcesLink,
		u.GFGLink,
	}
}

// LinkedInSnapshot derives the stored LinkedIn stats snapshot from the
// current profile fields.
func (u *UserProfile) LinkedInSnapshot() LinkedInStats {
	return LinkedInStats{
		Linked:          u.LinkedInLink != "",
		HeadlineLen:     len(strings.TrimSpace(u.LinkedInHeadline)),
		AboutLen:        len(strings.TrimSpace(u.LinkedInAbout)),
		ExperienceCount: u.LinkedInExperienceCount,
		SkillCount:      u.LinkedInSkillCount,
		CertCount:       u.LinkedInCertCount,
	}
}
