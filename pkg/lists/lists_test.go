package lists_test

import (
	"testing"

	"github.com/jackburrus/speakhuman/pkg/i18n"
	"github.com/jackburrus/speakhuman/pkg/lists"
	"github.com/stretchr/testify/assert"
)

func TestNaturalList(t *testing.T) {
	tests := []struct {
		name  string
		items []string
		want  string
	}{
		{"empty", nil, ""},
		{"single", []string{"one"}, "one"},
		{"pair", []string{"one", "two"}, "one and two"},
		{"triple", []string{"one", "two", "three"}, "one, two and three"},
		{"four", []string{"a", "b", "c", "d"}, "a, b, c and d"},
		{"single empty string", []string{""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, lists.NaturalList(tt.items))
		})
	}
}

func TestJoinTranslated(t *testing.T) {
	de := i18n.NewCatalog(i18n.CatalogConfig{
		Messages: map[string]string{"%s and %s": "%s und %s"},
	})
	assert.Equal(t, "eins, zwei und drei", lists.Join(de, []string{"eins", "zwei", "drei"}))
}
