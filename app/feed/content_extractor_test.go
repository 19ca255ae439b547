package feed

import (
	"strings"
	"testing"
)

func TestContentExtractor(t *testing.T) {
	html := `<!DOCTYPE html>
<html>
<head><title>Launch notes</title></head>
<body>
  <nav>Home | About | Contact</nav>
  <article>
    <h1>Launch notes</h1>
    <p>The new model ships with a longer context window and improved reasoning.
    Early benchmarks put it well ahead of the previous generation across a wide
    range of tasks, including coding, mathematics and multilingual evaluation.</p>
    <p>Pricing stays unchanged for existing customers during the rollout period,
    and the team expects general availability within the next few weeks.</p>
  </article>
</body>
</html>`

	extractor := NewContentExtractor()

	text, err := extractor.Run([]byte(html))
	if err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(text, "longer context window") {
		t.Errorf("Expected article text in extraction result, got: %s", text)
	}
}

func TestContentExtractorEmptyInput(t *testing.T) {
	extractor := NewContentExtractor()

	if _, err := extractor.Run(nil); err == nil {
		t.Error("Expected error for empty HTML data")
	}
}
