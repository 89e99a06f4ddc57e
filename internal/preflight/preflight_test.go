package preflight

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/R4tZz/vibe-code/internal/testutil"
)

func TestCheckAgainstFullStorefront(t *testing.T) {
	// GIVEN a storefront serving the full catalog
	server := testutil.NewStorefrontServer(t)

	// WHEN the landing page is checked
	report, err := Check(context.Background(), server.URL)

	// THEN every region the suite drives is present
	require.NoError(t, err)
	assert.True(t, report.Ready(), "problems: %v", report.Problems)
	assert.Equal(t, "Vibe Store", report.Title)
	assert.True(t, report.SectionPresent)
	assert.Equal(t, "Hot Sellers", report.Heading)
	assert.Equal(t, 3, report.CardCount)
	assert.True(t, report.SearchBox)
	assert.True(t, report.CartLink)
}

func TestCheckAgainstEmptyCatalog(t *testing.T) {
	// GIVEN a storefront whose catalog has been cleared
	server := testutil.NewPageServer(t, testutil.EmptyHomeHTML)

	// WHEN the landing page is checked
	report, err := Check(context.Background(), server.URL)

	// THEN the page is ready with zero cards
	require.NoError(t, err)
	assert.True(t, report.Ready(), "problems: %v", report.Problems)
	assert.Equal(t, 0, report.CardCount)
}

func TestCheckFlagsBrokenProductLink(t *testing.T) {
	// GIVEN a landing page whose card link lost its href
	server := testutil.NewPageServer(t, testutil.BrokenLinkHomeHTML)

	// WHEN the landing page is checked
	report, err := Check(context.Background(), server.URL)

	// THEN the broken link is reported as a problem
	require.NoError(t, err)
	assert.False(t, report.Ready())
	require.Len(t, report.Problems, 1)
	assert.Contains(t, report.Problems[0], "no href")
}

func TestCheckFlagsForeignMarkup(t *testing.T) {
	// GIVEN a server answering with markup that is not the storefront
	server := testutil.NewPageServer(t, `<!DOCTYPE html><html><head><title>Nginx default</title></head><body><h1>It works!</h1></body></html>`)

	// WHEN the landing page is checked
	report, err := Check(context.Background(), server.URL)

	// THEN every missing region is reported
	require.NoError(t, err)
	assert.False(t, report.Ready())
	assert.False(t, report.SectionPresent)
	assert.False(t, report.SearchBox)
	assert.False(t, report.CartLink)
	assert.Len(t, report.Problems, 3)
}

func TestCheckUnreachableStorefront(t *testing.T) {
	// GIVEN a storefront that has gone away
	server := testutil.NewStorefrontServer(t)
	url := server.URL
	server.Close()

	// WHEN the landing page is checked
	_, err := Check(context.Background(), url)

	// THEN the failure names the unreachable storefront
	require.ErrorIs(t, err, ErrUnreachable)
}

func TestCheckBadStatus(t *testing.T) {
	// GIVEN a storefront answering with a server error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	// WHEN the landing page is checked
	_, err := Check(context.Background(), server.URL)

	// THEN the failure names the status
	require.ErrorIs(t, err, ErrBadStatus)
	assert.Contains(t, err.Error(), "500")
}
