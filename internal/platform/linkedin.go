package platform

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/skillsence/skillverify/internal/fetch"
)

// LinkedInProfile holds the fields extracted from a public profile page.
type LinkedInProfile struct {
	Headline        string
	About           string
	ExperienceCount int
	SkillCount      int
	CertCount       int
}

const linkedInRenderTimeout = 30 * time.Second

// ImportLinkedInProfile fetches a public profile page and extracts the
// fields the richness formula reads. The page is a JavaScript-rendered SPA
// for most visitors, so a plain fetch falls back to headless rendering.
func ImportLinkedInProfile(ctx context.Context, link string, verbose bool) (*LinkedInProfile, error) {
	if strings.TrimSpace(link) == "" {
		return nil, &Error{Platform: "linkedin", Message: "no profile link on record"}
	}

	html, err := fetch.Raw(ctx, link, nil)
	if err != nil {
		html = ""
	}
	text, _ := fetch.ExtractMainText(html, fetch.ProfilePageSelectors())
	if fetch.ShouldUseBrowser(text) {
		html, err = fetch.WithBrowser(ctx, link, linkedInRenderTimeout, verbose)
		if err != nil {
			return nil, &Error{Platform: "linkedin", Message: "profile page fetch failed", Cause: err}
		}
	}

	profile, err := ParseLinkedInProfile(html)
	if err != nil {
		return nil, &Error{Platform: "linkedin", Message: "profile page parse failed", Cause: err}
	}
	return profile, nil
}

var sectionAnchors = map[string]*regexp.Regexp{
	"experience":     regexp.MustCompile(`(?i)#experience`),
	"skills":         regexp.MustCompile(`(?i)#skills`),
	"certifications": regexp.MustCompile(`(?i)#(licenses_and_certifications|certifications)`),
}

// ParseLinkedInProfile extracts profile fields from rendered page HTML.
// Public profile markup shifts often, so each field tries a list of
// selectors and settles for whatever matches first.
func ParseLinkedInProfile(html string) (*LinkedInProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	profile := &LinkedInProfile{
		Headline: firstText(doc,
			".top-card-layout__headline",
			".text-body-medium.break-words",
			`[data-section="headline"]`,
			"h2.top-card__subline-item",
		),
		About: firstText(doc,
			".core-section-container__content .break-words",
			`[data-section="summary"] p`,
			".summary .description",
			"section.about p",
		),
	}

	profile.ExperienceCount = sectionItemCount(doc, "experience")
	profile.SkillCount = sectionItemCount(doc, "skills")
	profile.CertCount = sectionItemCount(doc, "certifications")
	return profile, nil
}

func firstText(doc *goquery.Document, selectors ...string) string {
	for _, selector := range selectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			if text := strings.TrimSpace(selection.First().Text()); text != "" {
				return text
			}
		}
	}
	return ""
}

// sectionItemCount counts list items inside the named profile section. The
// section is located by its anchor id or data attribute.
func sectionItemCount(doc *goquery.Document, section string) int {
	anchor := sectionAnchors[section]
	count := 0
	doc.Find("section").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		id, _ := sel.Attr("id")
		dataSection, _ := sel.Attr("data-section")
		matched := strings.EqualFold(id, section) || strings.EqualFold(dataSection, section)
		if !matched && anchor != nil {
			if href, ok := sel.Find("a").First().Attr("href"); ok && anchor.MatchString(href) {
				matched = true
			}
		}
		if !matched {
			return true
		}
		count = sel.Find("li").Length()
		return false
	})
	return count
}
