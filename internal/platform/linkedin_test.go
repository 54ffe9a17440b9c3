package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const profileHTML = `
<html><body>
  <main>
    <h1>Asha Rao</h1>
    <div class="top-card-layout__headline">Backend engineer in training</div>
    <section data-section="summary">
      <p>Final year student building side projects.</p>
    </section>
    <section id="experience">
      <ul><li>Intern at Acme</li><li>Teaching assistant</li></ul>
    </section>
    <section id="skills">
      <ul><li>Python</li><li>SQL</li><li>Go</li></ul>
    </section>
    <section data-section="certifications">
      <ul><li>Cloud fundamentals</li></ul>
    </section>
  </main>
</body></html>`

func TestParseLinkedInProfile_ExtractsFields(t *testing.T) {
	profile, err := ParseLinkedInProfile(profileHTML)
	require.NoError(t, err)

	assert.Equal(t, "Backend engineer in training", profile.Headline)
	assert.Equal(t, "Final year student building side projects.", profile.About)
	assert.Equal(t, 2, profile.ExperienceCount)
	assert.Equal(t, 3, profile.SkillCount)
	assert.Equal(t, 1, profile.CertCount)
}

func TestParseLinkedInProfile_EmptyPage(t *testing.T) {
	profile, err := ParseLinkedInProfile("<html><body></body></html>")
	require.NoError(t, err)
	assert.Empty(t, profile.Headline)
	assert.Zero(t, profile.ExperienceCount)
}
