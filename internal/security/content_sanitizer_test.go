package security

import (
	"strings"
	"testing"
)

// TestSanitizeHTML_RemovesScriptTags はscriptタグと内容が除去されることを
// 検証する。
func TestSanitizeHTML_RemovesScriptTags(t *testing.T) {
	s := NewContentSanitizer()

	input := `<p>Wash your hands</p><script>alert("xss")</script>`
	got := s.SanitizeHTML(input)

	if strings.Contains(got, "<script>") || strings.Contains(got, "alert") {
		t.Errorf("script content survived sanitization: %q", got)
	}
	if !strings.Contains(got, "<p>Wash your hands</p>") {
		t.Errorf("allowed content was removed: %q", got)
	}
}

// TestSanitizeHTML_RemovesEventAttributes はon*イベント属性が除去される
// ことを検証する。
func TestSanitizeHTML_RemovesEventAttributes(t *testing.T) {
	s := NewContentSanitizer()

	got := s.SanitizeHTML(`<p onclick="steal()">hello</p>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("onclick attribute survived sanitization: %q", got)
	}
}

// TestSanitizeHTML_AllowsStructuralTags は許可タグが通過することを検証する。
func TestSanitizeHTML_AllowsStructuralTags(t *testing.T) {
	s := NewContentSanitizer()

	input := `<h2>Title</h2><h3>Sub</h3><ul><li>item</li></ul><ol><li>step</li></ol><blockquote>quote</blockquote><pre><code>x := 1</code></pre><strong>b</strong><em>i</em>`
	got := s.SanitizeHTML(input)

	for _, tag := range []string{"<h2>", "<h3>", "<ul>", "<ol>", "<li>", "<blockquote>", "<pre>", "<code>", "<strong>", "<em>"} {
		if !strings.Contains(got, tag) {
			t.Errorf("allowed tag %s was removed: %q", tag, got)
		}
	}
}

// TestSanitizeHTML_LinksGetSafeRel はaタグにtarget="_blank"とrel属性が
// 付与されることを検証する。
func TestSanitizeHTML_LinksGetSafeRel(t *testing.T) {
	s := NewContentSanitizer()

	got := s.SanitizeHTML(`<a href="https://example.com">link</a>`)
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("href was removed: %q", got)
	}
	if !strings.Contains(got, `target="_blank"`) {
		t.Errorf("target=_blank was not added: %q", got)
	}
	if !strings.Contains(got, "noreferrer") {
		t.Errorf("rel=noreferrer was not added: %q", got)
	}
}

// TestSanitizeHTML_RemovesIframe はiframeタグが除去されることを検証する。
func TestSanitizeHTML_RemovesIframe(t *testing.T) {
	s := NewContentSanitizer()

	got := s.SanitizeHTML(`<iframe src="https://evil.example"></iframe><p>ok</p>`)
	if strings.Contains(got, "iframe") {
		t.Errorf("iframe survived sanitization: %q", got)
	}
}

// TestSanitizeHTML_Idempotent は同一入力に対して常に同一出力を返すことを
// 検証する。
func TestSanitizeHTML_Idempotent(t *testing.T) {
	s := NewContentSanitizer()

	input := `<h2>Guide</h2><p>Sort your <strong>waste</strong>.</p>`
	first := s.SanitizeHTML(input)
	second := s.SanitizeHTML(first)
	if first != second {
		t.Errorf("sanitization is not idempotent: %q != %q", first, second)
	}
}

// TestSanitizeText_StripsAllTags は平文サニタイズが全タグを除去し
// 空白をトリムすることを検証する。
func TestSanitizeText_StripsAllTags(t *testing.T) {
	s := NewContentSanitizer()

	got := s.SanitizeText(`  <b>bin</b> is <i>full</i>  `)
	if got != "bin is full" {
		t.Errorf("SanitizeText = %q, want %q", got, "bin is full")
	}

	got = s.SanitizeText(`plain description`)
	if got != "plain description" {
		t.Errorf("SanitizeText = %q, want unchanged plain text", got)
	}
}
