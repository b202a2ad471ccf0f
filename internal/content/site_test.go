package content

import (
	"bytes"
	"testing"

	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/jengzang/sendnow-backend-go/internal/models"
	"github.com/jengzang/sendnow-backend-go/internal/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Validates(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestDefault_EverySampleRendersInBothStates(t *testing.T) {
	site := Default()
	for _, kind := range chart.Kinds() {
		v, ok := site.Dataset(kind)
		require.True(t, ok, kind)

		for _, state := range []chart.ViewState{chart.Pending, chart.Visible} {
			opts := chart.DefaultOptions()
			opts.Observer = chart.StaticObserver(state)

			scene, err := chart.Render(v, opts)
			require.NoError(t, err, "%s/%s", kind, state)

			var svg bytes.Buffer
			require.NoError(t, chart.EncodeSVG(&svg, scene))
			assert.Contains(t, svg.String(), `data-state="`+state.String()+`"`)

			var png bytes.Buffer
			require.NoError(t, raster.Encode(&png, scene, 0, 0), "%s/%s", kind, state)
		}
	}
}

func TestSection(t *testing.T) {
	site := Default()
	for _, name := range Sections {
		v, ok := site.Section(name)
		assert.True(t, ok, name)
		assert.NotNil(t, v, name)
	}
	_, ok := site.Section("blog")
	assert.False(t, ok)

	plans, _ := site.Section(SectionPlans)
	require.Len(t, plans, 4)
	assert.Equal(t, "Enterprise", plans.([]models.Plan)[3].Name)
}

func TestPlans(t *testing.T) {
	var highlighted []string
	for _, p := range Default().Plans {
		if p.Highlight {
			highlighted = append(highlighted, p.Name)
		}
	}
	assert.Equal(t, []string{"Basic"}, highlighted)
}

func TestLocationsMatchVisitorCard(t *testing.T) {
	var visitors int
	var share float64
	for _, l := range locations() {
		visitors += l.Visitors
		share += l.Percentage
	}
	assert.Equal(t, 1337, visitors)
	assert.InDelta(t, 100, share, 0.05)
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	site := Default()
	site.FAQs = append(site.FAQs, models.FAQ{Question: "?"})
	site.Testimonials[0].Rating = 6
	site.charts[chart.KindHeatmap] = chart.Heatmap{}
	delete(site.charts, chart.KindVideo)

	err := site.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "faq 6")
	assert.Contains(t, err.Error(), "testimonial 0")
	assert.Contains(t, err.Error(), "heatmap dataset")
	assert.Contains(t, err.Error(), "no sample dataset for video")
}
