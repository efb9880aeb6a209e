package page

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conneroisu/shelfpage/internal/catalog"
	"github.com/conneroisu/shelfpage/internal/components"
	"github.com/conneroisu/shelfpage/internal/dom"
	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

// legacyHost uses only the fallback selectors, no ids.
const legacyHost = `<html><body>
<section class="hero-section"><input class="form-control" value=""><button class="btn btn-primary">Search</button></section>
<section class="categories-section"><div class="row"></div></section>
<section class="bestsellers-section"><div class="row"></div></section>
</body></html>`

const bareHost = `<html><body><main><p id="keep">untouched</p></main></body></html>`

func loadDefault(t *testing.T, opts Options) *dom.Document {
	t.Helper()
	doc, err := Load(context.Background(), DefaultHost(), opts)
	require.NoError(t, err)
	return doc
}

func TestLoadRendersBothSections(t *testing.T) {
	doc := loadDefault(t, Options{})

	cats := catalog.Categories()
	cards := doc.QueryAll("#categories ." + components.CategoryCardClass)
	require.Len(t, cards, len(cats))
	for i, card := range cards {
		title, ok := card.Query("h5.card-title")
		require.True(t, ok)
		assert.Equal(t, cats[i].Title, title.Text())

		color, _ := card.Attr(components.ColorAttr)
		assert.Equal(t, cats[i].Color, color)
	}

	books := doc.QueryAll("#bestsellers ." + components.BookCardClass)
	require.Len(t, books, len(catalog.Bestsellers()))

	price, ok := books[4].Query("span.fw-bold")
	require.True(t, ok)
	assert.Equal(t, "$16.50", price.Text())
}

func TestFallbackSelectors(t *testing.T) {
	notifier := &RecordingNotifier{}
	doc, err := Load(context.Background(), strings.NewReader(legacyHost), Options{Notifier: notifier})
	require.NoError(t, err)

	assert.Len(t, doc.QueryAll(".categories-section .row ."+components.CategoryCardClass), 8)
	assert.Len(t, doc.QueryAll(".bestsellers-section .row ."+components.BookCardClass), 8)

	input, _ := doc.Find(".hero-section .form-control")
	button, _ := doc.Find(".hero-section .btn-primary")
	input.SetValue("Dune")
	button.Click()
	assert.Equal(t, SearchMessage("Dune"), notifier.Last())
}

func TestMissingContainersAreNoOps(t *testing.T) {
	doc, err := dom.ParseString(bareHost)
	require.NoError(t, err)
	before, err := doc.HTML()
	require.NoError(t, err)

	p, err := New(doc, Options{})
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		assert.False(t, p.Mount(context.Background()))
		doc.Ready()
	})
	assert.False(t, p.RenderCategories(context.Background()))
	assert.False(t, p.RenderBestsellers(context.Background()))

	after, err := doc.HTML()
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestRenderWaitsForReady(t *testing.T) {
	doc, err := dom.Parse(DefaultHost())
	require.NoError(t, err)

	p, err := New(doc, Options{})
	require.NoError(t, err)
	assert.True(t, p.Mount(context.Background()))

	assert.Empty(t, doc.QueryAll("."+components.CategoryCardClass))

	doc.Ready()
	assert.Len(t, doc.QueryAll("."+components.CategoryCardClass), 8)

	doc.Ready()
	assert.Len(t, doc.QueryAll("."+components.CategoryCardClass), 8)
}

func TestCategoryHoverRestoresOriginalColor(t *testing.T) {
	doc := loadDefault(t, Options{})

	cats := catalog.Categories()
	for i, card := range doc.QueryAll("." + components.CategoryCardClass) {
		icon, ok := card.Query("i")
		require.True(t, ok)

		assert.Equal(t, 1, card.Hover())
		assert.Equal(t, DefaultHighlightColor, icon.Style("color"))

		assert.Equal(t, 1, card.Leave())
		assert.Equal(t, cats[i].Color, icon.Style("color"))
	}
}

func TestCategoryHoverCustomHighlight(t *testing.T) {
	doc := loadDefault(t, Options{HighlightColor: "#123abc"})

	card := doc.QueryAll("." + components.CategoryCardClass)[0]
	icon, _ := card.Query("i")
	card.Hover()
	assert.Equal(t, "#123abc", icon.Style("color"))
}

func TestHoverWithoutColorAttrRestoresBlank(t *testing.T) {
	doc, err := dom.ParseString(`<div id="c"><div class="category-card"><i style="color: #FF7F50;"></i></div></div>`)
	require.NoError(t, err)
	p, err := New(doc, Options{})
	require.NoError(t, err)

	container, _ := doc.Find("#c")
	require.Equal(t, 1, p.bindCategoryHover(container))

	card, _ := doc.Find(".category-card")
	icon, _ := card.Query("i")
	card.Hover()
	card.Leave()
	assert.Equal(t, "", icon.Style("color"))
}

func TestInvalidCatalogFailsFast(t *testing.T) {
	cats := catalog.Categories()
	cats[0].Color = "FF7F50"

	_, err := Load(context.Background(), DefaultHost(), Options{Categories: cats})
	require.Error(t, err)
	assert.True(t, shelferrors.IsValidation(err))
}

func TestCustomCatalogAndCoverBase(t *testing.T) {
	books := []catalog.Book{{Title: "Dune", Author: "Frank Herbert", Rating: 4.5, Price: 12, CoverColor: "#C2B280"}}
	doc := loadDefault(t, Options{Books: books, CoverBase: "https://img.example.com/100x150"})

	cards := doc.QueryAll("." + components.BookCardClass)
	require.Len(t, cards, 1)
	img, _ := cards[0].Query("img")
	src, _ := img.Attr("src")
	assert.Equal(t, "https://img.example.com/100x150/C2B280/FFFFFF?text=Dune", src)
}

func TestOpenHost(t *testing.T) {
	rc, err := OpenHost("")
	require.NoError(t, err)
	doc, err := Load(context.Background(), rc, Options{})
	require.NoError(t, rc.Close())
	require.NoError(t, err)
	assert.Len(t, doc.QueryAll("."+components.BookCardClass), 8)

	path := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(path, []byte(legacyHost), 0o600))
	rc, err = OpenHost(path)
	require.NoError(t, err)
	require.NoError(t, rc.Close())

	_, err = OpenHost(filepath.Join(t.TempDir(), "missing.html"))
	require.Error(t, err)
	assert.True(t, shelferrors.IsIO(err))
	assert.True(t, errors.Is(err, shelferrors.NewIOError(shelferrors.ErrCodeFileNotFound, "", nil)))
}
