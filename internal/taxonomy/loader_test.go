package taxonomy

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSource struct {
	records []Record
	err     error
	calls   int
}

func (f *fakeSource) ListActive(context.Context) ([]Record, error) {
	f.calls++
	return f.records, f.err
}

func nullStr(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func TestLoadSourceFailureFallsBackToDefaults(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}
	l := NewLoader(src, 0)

	cats := l.Load(context.Background())

	assert.Equal(t, Defaults(), cats)
	assert.Len(t, cats, 6)
}

func TestLoadNilSourceUsesDefaults(t *testing.T) {
	l := NewLoader(nil, 0)
	assert.Equal(t, Defaults(), l.Load(context.Background()))
}

func TestLoadEmptyResultUsesDefaults(t *testing.T) {
	l := NewLoader(&fakeSource{}, 0)
	assert.Equal(t, Defaults(), l.Load(context.Background()))
}

func TestLoadFormatsRecords(t *testing.T) {
	src := &fakeSource{records: []Record{
		{Name: "Appliance Repair", AILabel: nullStr("Appliance repair service"), Slug: nullStr("appliances"), Priority: 10},
		{Name: "Pest Control", Priority: 5},
		{Name: "   ", AILabel: nullStr("ignored"), Priority: 1},
	}}
	l := NewLoader(src, 0)

	cats := l.Load(context.Background())

	require.Len(t, cats, 2)
	assert.Equal(t, Category{
		Hypothesis:  "Appliance repair service",
		DisplayName: "Appliance Repair",
		Slug:        "appliances",
	}, cats[0])
	// Missing ai_label and slug are synthesized from the name.
	assert.Equal(t, Category{
		Hypothesis:  "This request is about pest control work and related repair services",
		DisplayName: "Pest Control",
		Slug:        "pest-control",
	}, cats[1])
}

func TestLoadOnlyBlankNamesUsesDefaults(t *testing.T) {
	src := &fakeSource{records: []Record{{Name: ""}, {Name: "  "}}}
	l := NewLoader(src, 0)
	assert.Equal(t, Defaults(), l.Load(context.Background()))
}

func TestLoadPreservesSourceOrdering(t *testing.T) {
	src := &fakeSource{records: []Record{
		{Name: "B Service", Priority: 9},
		{Name: "A Service", Priority: 1},
	}}
	l := NewLoader(src, 0)

	cats := l.Load(context.Background())

	require.Len(t, cats, 2)
	assert.Equal(t, "B Service", cats[0].DisplayName)
	assert.Equal(t, "A Service", cats[1].DisplayName)
}

func TestLoadWithoutTTLFetchesEveryTime(t *testing.T) {
	src := &fakeSource{records: []Record{{Name: "Roofing"}}}
	l := NewLoader(src, 0)

	l.Load(context.Background())
	l.Load(context.Background())

	assert.Equal(t, 2, src.calls)
}

func TestLoadWithTTLServesCachedSnapshot(t *testing.T) {
	src := &fakeSource{records: []Record{{Name: "Roofing"}}}
	l := NewLoader(src, time.Minute)

	first := l.Load(context.Background())
	second := l.Load(context.Background())

	assert.Equal(t, 1, src.calls)
	assert.Equal(t, first, second)
}
