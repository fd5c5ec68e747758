package document

import (
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	docxFont  = "Times New Roman"
	docxColor = "000000"
	bodySize  = 12
)

var (
	reMarkdownHeading = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	reMarkdownBullet  = regexp.MustCompile(`^[\-\*]\s+(.+)$`)
	reMarkdownBold    = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// Font sizes by markdown heading level; deeper levels use bodySize.
var headingSizes = map[int]uint64{1: 16, 2: 15, 3: 14}

type paragraphAdder interface {
	AddParagraph(text string) *docx.Paragraph
}

type docxRenderer struct {
	doc paragraphAdder
}

// WriteDocx renders a formatted document into a .docx file. The first line
// becomes the title, section markers become headings and dividers are
// dropped. Markdown in LLM summaries gets basic styling.
func WriteDocx(content, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}
	r := docxRenderer{doc: doc}

	first := true
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == Divider {
			continue
		}
		if first {
			r.heading(line, 16)
			first = false
			continue
		}
		r.line(line)
	}

	return doc.SaveTo(outputPath)
}

func (r docxRenderer) line(line string) {
	switch {
	case isSectionHeading(line):
		r.heading(line, 14)
	case reMarkdownHeading.MatchString(line):
		m := reMarkdownHeading.FindStringSubmatch(line)
		size, ok := headingSizes[len(m[1])]
		if !ok {
			size = bodySize
		}
		r.heading(m[2], size)
	case reMarkdownBullet.MatchString(line):
		r.body("• " + reMarkdownBullet.FindStringSubmatch(line)[1])
	default:
		r.body(line)
	}
}

func (r docxRenderer) heading(text string, size uint64) {
	p := r.doc.AddParagraph("")
	p.AddText(stripInlineMarkup(text)).Font(docxFont).Size(size).Color(docxColor).Bold(true)
}

// body writes text as one paragraph, rendering **bold** spans in bold.
func (r docxRenderer) body(text string) {
	p := r.doc.AddParagraph("")

	last := 0
	for _, loc := range reMarkdownBold.FindAllStringSubmatchIndex(text, -1) {
		addRun(p, text[last:loc[0]], false)
		addRun(p, text[loc[2]:loc[3]], true)
		last = loc[1]
	}
	addRun(p, text[last:], false)
}

func addRun(p *docx.Paragraph, text string, bold bool) {
	text = stripInlineMarkup(text)
	if text == "" {
		return
	}
	run := p.AddText(text).Font(docxFont).Size(bodySize).Color(docxColor)
	if bold {
		run.Bold(true)
	}
}

func isSectionHeading(line string) bool {
	return line == SummaryHeading || line == TranscriptTitle || line == "Video Details:"
}

func stripInlineMarkup(s string) string {
	return strings.NewReplacer("**", "", "__", "", "`", "").Replace(s)
}
