package assets

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func Test_DefaultTheme_Icons(t *testing.T) {
	theme, err := DefaultTheme()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.FolderIcon() != FolderIconName {
		t.Errorf("expected folder icon %q, got %q", FolderIconName, theme.FolderIcon())
	}
	if theme.FileIcon() != UnknownIconName {
		t.Errorf("expected file icon %q, got %q", UnknownIconName, theme.FileIcon())
	}
}

func Test_LoadTheme_IconBase(t *testing.T) {
	theme, err := LoadTheme("", "/icons/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.FolderIcon() != "/icons/folder.gif" {
		t.Errorf("expected /icons/folder.gif, got %q", theme.FolderIcon())
	}
}

func Test_Render_StyleOnlyInPreview(t *testing.T) {
	theme, err := DefaultTheme()
	if err != nil {
		t.Fatal(err)
	}

	var plain strings.Builder
	if err := theme.Render(&plain, Page{Title: "./docs", Link: "docs"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(plain.String(), "<style></style>") {
		t.Errorf("expected empty style block, got:\n%s", plain.String())
	}

	var preview strings.Builder
	if err := theme.Render(&preview, Page{Title: "./docs", Link: "docs", Preview: true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(preview.String(), "td.thumbnail:hover span") {
		t.Errorf("expected preview stylesheet, got:\n%s", preview.String())
	}
}

func Test_Render_Rows(t *testing.T) {
	theme, err := DefaultTheme()
	if err != nil {
		t.Fatal(err)
	}

	page := Page{
		Title: "./docs",
		Rows: []Row{
			{Name: "a.png", Href: "a.png", Date: "2024-01-01 00:00:00", Size: "500", Icon: "unknown.gif", Class: ThumbnailClass, Embed: EmbedImage},
			{Name: "b.md", Href: "b.md", Date: "2024-01-01 00:00:00", Size: "1.00K", Icon: "unknown.gif", Class: ThumbnailClass, Embed: EmbedIframe},
			{Name: "sub", Href: "sub/", IsDir: true, Date: "2024-01-01 00:00:00", Size: "-", Icon: "folder.gif"},
		},
	}
	var out strings.Builder
	if err := theme.Render(&out, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := out.String()

	for _, want := range []string{
		`<td class="thumbnail"><a href="a.png">a.png</a><span><img src="a.png"></span></td>`,
		`<span><iframe src="b.md"></iframe></span>`,
		`<td><a href="sub/">sub</a></td>`,
		`alt="[DIR]"`,
		`<h1>Index of ./docs - <a href=""></a></h1>`,
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, html)
		}
	}
}

func Test_LoadTheme_CustomTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	custom := filepath.Join(tmpDir, "page.html")
	os.WriteFile(custom, []byte(`{{define "page"}}<ul>{{range .Rows}}{{template "row" .}}{{end}}</ul>{{end}}{{define "row"}}<li>{{.Name}}</li>{{end}}`), 0644)

	theme, err := LoadTheme(custom, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out strings.Builder
	if err := theme.Render(&out, Page{Rows: []Row{{Name: "a.txt"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.String() != "<ul><li>a.txt</li></ul>" {
		t.Errorf("expected custom rendering, got %q", out.String())
	}
}

func Test_LoadTheme_MissingTemplate(t *testing.T) {
	if _, err := LoadTheme(filepath.Join(t.TempDir(), "nope.html"), ""); err == nil {
		t.Error("expected error for missing template file")
	}
}

func Test_Render_ZeroTheme(t *testing.T) {
	var theme Theme
	if err := theme.Render(&strings.Builder{}, Page{}); err == nil {
		t.Error("expected error rendering with an uninitialized theme")
	}
}
