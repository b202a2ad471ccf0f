package content

import (
	"github.com/jengzang/sendnow-backend-go/internal/chart"
	"github.com/jengzang/sendnow-backend-go/internal/models"
)

// Visitor origins; visitors add up to the "Unique Visitors" stat card
func locations() []models.GeoLocation {
	return []models.GeoLocation{
		{Name: "New York", Country: "US", Lat: 40.7128, Lng: -74.0060, Visitors: 428, Percentage: 32.01},
		{Name: "London", Country: "GB", Lat: 51.5074, Lng: -0.1278, Visitors: 312, Percentage: 23.34},
		{Name: "Berlin", Country: "DE", Lat: 52.5200, Lng: 13.4050, Visitors: 186, Percentage: 13.91},
		{Name: "Tokyo", Country: "JP", Lat: 35.6762, Lng: 139.6503, Visitors: 154, Percentage: 11.52},
		{Name: "Sydney", Country: "AU", Lat: -33.8688, Lng: 151.2093, Visitors: 98, Percentage: 7.33},
		{Name: "São Paulo", Country: "BR", Lat: -23.5505, Lng: -46.6333, Visitors: 87, Percentage: 6.51},
		{Name: "Mumbai", Country: "IN", Lat: 19.0760, Lng: 72.8777, Visitors: 72, Percentage: 5.39},
	}
}

func datasets() map[chart.Kind]chart.View {
	return map[chart.Kind]chart.View{
		chart.KindOverview: chart.Overview{
			Stats: statCards(),
			Sessions: []models.DataPoint{
				{Label: "Mon", Value: 4820},
				{Label: "Tue", Value: 5930},
				{Label: "Wed", Value: 5410},
				{Label: "Thu", Value: 6870},
				{Label: "Fri", Value: 6120},
				{Label: "Sat", Value: 4380},
				{Label: "Sun", Value: 5244},
			},
			Traffic: locations(),
		},
		chart.KindHeatmap: chart.Heatmap{
			Page: "Pitch deck, slide 3",
			Hotspots: []models.HotspotPoint{
				{X: 20, Y: 15, Intensity: 9, Clicks: 142},
				{X: 75, Y: 12, Intensity: 7},
				{X: 50, Y: 45, Intensity: 6, Clicks: 58},
				{X: 30, Y: 70, Intensity: 4},
				{X: 80, Y: 60, Intensity: 8, Clicks: 96},
				{X: 60, Y: 85, Intensity: 3},
			},
		},
		chart.KindDevices: chart.DeviceAnalytics{
			Devices: []models.PieSlice{
				{Name: "Desktop", Value: 68, Color: "#7C5832"},
				{Name: "Mobile", Value: 24, Color: "#B79F85"},
				{Name: "Tablet", Value: 8, Color: "#D4C5B4"},
			},
			Weekly: []models.DayValue{
				{Day: "Mon", Value: 42},
				{Day: "Tue", Value: 58},
				{Day: "Wed", Value: 51},
				{Day: "Thu", Value: 64, Highest: true},
				{Day: "Fri", Value: 47},
				{Day: "Sat", Value: 23},
				{Day: "Sun", Value: 18},
			},
		},
		chart.KindTimeSpent: chart.TimeSpent{
			Points: []models.DataPoint{
				{Label: "Apr 1", Value: 12},
				{Label: "Apr 2", Value: 18},
				{Label: "Apr 3", Value: 15},
				{Label: "Apr 4", Value: 24},
				{Label: "Apr 5", Value: 21},
				{Label: "Apr 6", Value: 28, Annotation: "28 min avg"},
				{Label: "Apr 7", Value: 26},
			},
		},
		chart.KindMap: chart.MapAnalytics{Locations: locations()},
		chart.KindVideo: chart.VideoAnalytics{
			Title:        "Product Demo",
			Duration:     "01:32",
			TotalViews:   247,
			AvgWatchTime: "01:03",
			Current:      "00:08",
			Segments: []models.VideoSegment{
				{Start: "00:00", End: "00:15", Views: 247, Engagement: 95},
				{Start: "00:15", End: "00:30", Views: 231, Engagement: 80},
				{Start: "00:30", End: "00:45", Views: 198, Engagement: 62},
				{Start: "00:45", End: "01:00", Views: 176, Engagement: 70},
				{Start: "01:00", End: "01:15", Views: 121, Engagement: 40, DropOff: true},
				{Start: "01:15", End: "01:32", Views: 98, Engagement: 35},
			},
		},
	}
}
