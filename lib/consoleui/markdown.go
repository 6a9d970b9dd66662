// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package consoleui

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/scalefield/console/lib/tui"
)

var (
	notesParser     goldmark.Markdown
	notesParserOnce sync.Once
	styleRenderer   *lipgloss.Renderer
	styleOnce       sync.Once
)

func markdownParser() goldmark.Markdown {
	notesParserOnce.Do(func() {
		notesParser = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return notesParser
}

// forcedRenderer returns a lipgloss renderer pinned to ANSI256. The
// notes and the highlighted payloads are always drawn inside the TUI,
// and auto-detection would strip the colors when stderr is not a TTY.
func forcedRenderer() *lipgloss.Renderer {
	styleOnce.Do(func() {
		styleRenderer = lipgloss.NewRenderer(os.Stderr, termenv.WithProfile(termenv.ANSI256))
		styleRenderer.SetColorProfile(termenv.ANSI256)
	})
	return styleRenderer
}

// renderNotes renders markdown notes (deployment and project notes) as
// styled lines wrapped to width. Soft line breaks reflow.
func renderNotes(input string, theme tui.Theme, width int) string {
	if strings.TrimSpace(input) == "" {
		return ""
	}
	source := []byte(input)
	document := markdownParser().Parser().Parse(text.NewReader(source))
	writer := &notesWriter{
		source: source,
		theme:  theme,
		width:  max(width, 10),
		styles: forcedRenderer(),
	}
	ast.Walk(document, writer.walk)
	return strings.TrimRight(writer.output.String(), "\n")
}

// notesWriter walks a goldmark AST. Inline content of a block
// accumulates in inline and is wrapped as a unit when the block
// closes.
type notesWriter struct {
	source []byte
	theme  tui.Theme
	width  int
	styles *lipgloss.Renderer

	output strings.Builder
	inline strings.Builder

	indent  string
	bullet  string
	lists   []listCounter
	markers []int
	bold    int
	italic  int
	strike  int
	blankOK bool
}

type listCounter struct {
	ordered bool
	next    int
	tight   bool
}

func (writer *notesWriter) style() lipgloss.Style {
	return writer.styles.NewStyle()
}

func (writer *notesWriter) tight() bool {
	return len(writer.lists) > 0 && writer.lists[len(writer.lists)-1].tight
}

// emit writes finished lines, putting a pending list bullet in front
// of the first one.
func (writer *notesWriter) emit(block string) {
	for index, line := range strings.Split(block, "\n") {
		prefix := writer.indent
		if index == 0 && writer.bullet != "" {
			prefix = writer.bullet
			writer.bullet = ""
		}
		writer.output.WriteString(prefix + line + "\n")
	}
	writer.blankOK = true
}

func (writer *notesWriter) blank() {
	if writer.blankOK && !writer.tight() {
		writer.output.WriteString("\n")
		writer.blankOK = false
	}
}

func (writer *notesWriter) flush() {
	content := writer.inline.String()
	writer.inline.Reset()
	if content == "" {
		return
	}
	available := max(writer.width-ansi.StringWidth(writer.indent), 10)
	writer.emit(ansi.Wrap(content, available, " ,.;-+|"))
}

func (writer *notesWriter) styled(content string) string {
	style := writer.style().Foreground(writer.theme.NormalText)
	if writer.bold > 0 {
		style = style.Bold(true)
	}
	if writer.italic > 0 {
		style = style.Italic(true)
	}
	if writer.strike > 0 {
		style = style.Strikethrough(true)
	}
	return style.Render(content)
}

func (writer *notesWriter) walk(node ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		if entering {
			writer.inline.Reset()
			return ast.WalkContinue, nil
		}
		writer.flush()
		writer.blank()

	case ast.KindHeading:
		if entering {
			writer.inline.Reset()
			return ast.WalkContinue, nil
		}
		content := ansi.Strip(writer.inline.String())
		writer.inline.Reset()
		color := writer.theme.NormalText
		if node.(*ast.Heading).Level <= 2 {
			color = writer.theme.HeaderForeground
		}
		writer.blank()
		writer.emit(writer.style().Bold(true).Foreground(color).Render(content))
		writer.blank()

	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		if !entering {
			return ast.WalkContinue, nil
		}
		language := ""
		if fenced, ok := node.(*ast.FencedCodeBlock); ok {
			language = string(fenced.Language(writer.source))
		}
		var code strings.Builder
		lines := node.Lines()
		for index := 0; index < lines.Len(); index++ {
			segment := lines.At(index)
			code.Write(segment.Value(writer.source))
		}
		writer.emit(strings.TrimRight(highlight(code.String(), language, writer.theme), "\n"))
		writer.blank()
		return ast.WalkSkipChildren, nil

	case ast.KindBlockquote:
		if entering {
			writer.indent += "│ "
		} else {
			writer.indent = strings.TrimSuffix(writer.indent, "│ ")
			writer.blank()
		}

	case ast.KindList:
		if entering {
			list := node.(*ast.List)
			writer.lists = append(writer.lists, listCounter{ordered: list.IsOrdered(), next: list.Start, tight: list.IsTight})
		} else {
			writer.lists = writer.lists[:len(writer.lists)-1]
			writer.blank()
		}

	case ast.KindListItem:
		if len(writer.lists) == 0 {
			return ast.WalkContinue, nil
		}
		if !entering {
			width := writer.markers[len(writer.markers)-1]
			writer.markers = writer.markers[:len(writer.markers)-1]
			writer.indent = writer.indent[:len(writer.indent)-width]
			return ast.WalkContinue, nil
		}
		top := &writer.lists[len(writer.lists)-1]
		marker := "- "
		if top.ordered {
			marker = fmt.Sprintf("%d. ", top.next)
			top.next++
		}
		writer.bullet = writer.indent + marker
		writer.indent += strings.Repeat(" ", len(marker))
		writer.markers = append(writer.markers, len(marker))

	case ast.KindThematicBreak:
		if entering {
			writer.blank()
			rule := strings.Repeat("─", max(writer.width-ansi.StringWidth(writer.indent), 1))
			writer.emit(writer.style().Foreground(writer.theme.BorderColor).Render(rule))
			writer.blank()
		}

	case ast.KindText:
		if entering {
			textNode := node.(*ast.Text)
			writer.inline.WriteString(writer.styled(string(textNode.Segment.Value(writer.source))))
			if textNode.SoftLineBreak() {
				writer.inline.WriteString(" ")
			}
			if textNode.HardLineBreak() {
				writer.inline.WriteString("\n")
			}
		}

	case ast.KindString:
		if entering {
			writer.inline.WriteString(writer.styled(string(node.(*ast.String).Value)))
		}

	case ast.KindEmphasis:
		counter := &writer.italic
		if node.(*ast.Emphasis).Level >= 2 {
			counter = &writer.bold
		}
		if entering {
			*counter++
		} else {
			*counter--
		}

	case extast.KindStrikethrough:
		if entering {
			writer.strike++
		} else {
			writer.strike--
		}

	case ast.KindCodeSpan:
		if entering {
			var code strings.Builder
			for child := node.FirstChild(); child != nil; child = child.NextSibling() {
				if textNode, ok := child.(*ast.Text); ok {
					code.Write(textNode.Segment.Value(writer.source))
				}
			}
			writer.inline.WriteString(writer.style().Foreground(writer.theme.Accent).Render(code.String()))
			return ast.WalkSkipChildren, nil
		}

	case ast.KindLink:
		if !entering {
			url := string(node.(*ast.Link).Destination)
			if url != "" {
				writer.inline.WriteString(" " + writer.style().Foreground(writer.theme.FaintText).Render("("+url+")"))
			}
		}

	case ast.KindAutoLink:
		if entering {
			url := string(node.(*ast.AutoLink).URL(writer.source))
			writer.inline.WriteString(writer.style().Foreground(writer.theme.Progress).Render(url))
			return ast.WalkSkipChildren, nil
		}

	case extast.KindTaskCheckBox:
		if entering {
			if node.(*extast.TaskCheckBox).IsChecked {
				writer.inline.WriteString(writer.style().Foreground(writer.theme.Positive).Render("[x]") + " ")
			} else {
				writer.inline.WriteString(writer.styled("[ ] "))
			}
		}

	case ast.KindHTMLBlock, ast.KindRawHTML, ast.KindImage:
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

// highlight syntax-colors code with chroma. Unknown languages and
// chroma failures fall back to faint plain text.
func highlight(code, language string, theme tui.Theme) string {
	fallback := forcedRenderer().NewStyle().Foreground(theme.FaintText).Render(code)
	if language == "" {
		return fallback
	}
	style := "monokai"
	if theme.Name == tui.LightTheme.Name {
		style = "github"
	}
	var buffer strings.Builder
	if err := quick.Highlight(&buffer, code, language, "terminal256", style); err != nil {
		return fallback
	}
	return buffer.String()
}
