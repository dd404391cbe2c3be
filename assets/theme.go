package assets

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"
)

//go:embed templates/page.html templates/preview.css
var templateFS embed.FS

// Icon file names, resolved against Theme's icon base.
const (
	FolderIconName  = "folder.gif"
	UnknownIconName = "unknown.gif"
)

// Embed kinds for a row's preview markup.
const (
	EmbedNone   = ""
	EmbedIframe = "iframe"
	EmbedImage  = "img"
)

// ThumbnailClass is the CSS class put on rows that carry a preview.
const ThumbnailClass = "thumbnail"

// Row is the view model of a single listing line.
type Row struct {
	Name  string // entry name as shown
	Href  string // relative link target ("sub/" for directories)
	IsDir bool
	Date  string
	Size  string
	Icon  string
	Class string // CSS class, empty when no preview
	Embed string // one of the Embed* kinds
}

// Page is the view model of one generated index page.
type Page struct {
	Title   string
	Link    string
	Preview bool
	CSS     template.CSS
	Rows    []Row
}

// Theme holds the parsed templates, icons, and stylesheet used to render
// pages. It is read-only after construction and safe to share between
// recursive calls.
type Theme struct {
	page       *template.Template
	css        template.CSS
	folderIcon string
	fileIcon   string
}

// DefaultTheme returns the embedded Apache-like theme with icons resolved
// relative to each generated page.
func DefaultTheme() (Theme, error) {
	return LoadTheme("", "")
}

// LoadTheme builds a theme from the embedded templates. A non-empty
// templatePath is parsed on top of them and may redefine "page" and/or
// "row". iconBase is prepended verbatim to the icon file names.
func LoadTheme(templatePath string, iconBase string) (Theme, error) {
	page, err := template.ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return Theme{}, fmt.Errorf("parsing embedded templates: %w", err)
	}

	if templatePath != "" {
		custom, err := os.ReadFile(templatePath)
		if err != nil {
			return Theme{}, fmt.Errorf("reading template %s: %w", templatePath, err)
		}
		if _, err := page.New("custom").Parse(string(custom)); err != nil {
			return Theme{}, fmt.Errorf("parsing template %s: %w", templatePath, err)
		}
	}

	if page.Lookup("page") == nil || page.Lookup("row") == nil {
		return Theme{}, fmt.Errorf("template set must define \"page\" and \"row\"")
	}

	css, err := templateFS.ReadFile("templates/preview.css")
	if err != nil {
		return Theme{}, fmt.Errorf("reading embedded stylesheet: %w", err)
	}

	return Theme{
		page:       page,
		css:        template.CSS(css),
		folderIcon: iconBase + FolderIconName,
		fileIcon:   iconBase + UnknownIconName,
	}, nil
}

// FolderIcon returns the icon URL used for directory rows.
func (t Theme) FolderIcon() string { return t.folderIcon }

// FileIcon returns the icon URL used for every non-directory row.
func (t Theme) FileIcon() string { return t.fileIcon }

// Render writes the page document. The stylesheet is only emitted when
// p.Preview is set; callers do not fill p.CSS themselves.
func (t Theme) Render(w io.Writer, p Page) error {
	if t.page == nil {
		return fmt.Errorf("theme not initialized")
	}
	p.CSS = ""
	if p.Preview {
		p.CSS = t.css
	}
	return t.page.ExecuteTemplate(w, "page", p)
}
