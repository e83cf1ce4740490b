package mailing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/newsletter/internal/domain"
)

func TestRender(t *testing.T) {
	ts := NewTemplateService()

	tests := []struct {
		name     string
		template string
		bindings map[string]interface{}
		want     string
	}{
		{"plain variable", "Hello {{ name }}", map[string]interface{}{"name": "Ursula"}, "Hello Ursula"},
		{"escape filter", "{{ name | escape }}", map[string]interface{}{"name": "Tom & Jerry's"}, "Tom &amp; Jerry&#39;s"},
		{"first_name filter", "{{ name | first_name }}", map[string]interface{}{"name": "Ursula Le Guin"}, "Ursula"},
		{"first_name of blank", "[{{ name | first_name }}]", map[string]interface{}{"name": ""}, "[]"},
		{"missing variable", "Hi {{ missing }}!", map[string]interface{}{}, "Hi !"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ts.Render("", tt.template, tt.bindings)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_ParseError(t *testing.T) {
	ts := NewTemplateService()

	_, err := ts.Render("broken", "{% if ready %}no end", nil)
	assert.Error(t, err)
	assert.Error(t, ts.Parse("{% for x in items %}"))
	assert.NoError(t, ts.Parse("{{ name }}"))
}

func TestRender_UsesCache(t *testing.T) {
	ts := NewTemplateService()

	first, err := ts.Render("greeting", "Hello {{ name }}", map[string]interface{}{"name": "A"})
	require.NoError(t, err)
	assert.Equal(t, "Hello A", first)

	// Same key, different source: the cached template wins.
	second, err := ts.Render("greeting", "Bye {{ name }}", map[string]interface{}{"name": "B"})
	require.NoError(t, err)
	assert.Equal(t, "Hello B", second)
}

func TestRenderWelcome(t *testing.T) {
	ts := NewTemplateService()
	name, err := domain.ParseSubscriberName("Ursula Le Guin & co")
	require.NoError(t, err)

	msg, err := ts.RenderWelcome(name)
	require.NoError(t, err)

	assert.Equal(t, "Welcome to our newsletter, Ursula!", msg.Subject)
	assert.Contains(t, msg.HTML, "Hi Ursula Le Guin &amp; co,")
	assert.Contains(t, msg.Text, "Hi Ursula Le Guin & co,")
}

func TestRenderWelcome_Concurrent(t *testing.T) {
	ts := NewTemplateService()
	name, err := domain.ParseSubscriberName("Ada")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			msg, err := ts.RenderWelcome(name)
			assert.NoError(t, err)
			assert.Equal(t, "Welcome to our newsletter, Ada!", msg.Subject)
		}()
	}
	wg.Wait()
}
