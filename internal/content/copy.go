package content

import "github.com/jengzang/sendnow-backend-go/internal/models"

func available(texts ...string) []models.PlanFeature {
	res := make([]models.PlanFeature, len(texts))
	for i, t := range texts {
		res[i] = models.PlanFeature{Text: t, Available: true}
	}
	return res
}

func plans() []models.Plan {
	return []models.Plan{
		{
			Name:        "Free",
			Description: "Perfect for trying out SendNow",
			Price:       "$0",
			AnnualPrice: "$0",
			Period:      "/month",
			Features: append(available(
				"Up to 3 links",
				"50MB file limit",
				"Basic analytics",
				"Links active for 7 days",
			), models.PlanFeature{Text: "No watermark", Available: false}),
			CTA: "Get started",
		},
		{
			Name:        "Basic",
			Description: "For professionals and small teams",
			Price:       "$10",
			AnnualPrice: "$8",
			Period:      "/month",
			Features: available(
				"Up to 30 links",
				"500MB file limit",
				"Advanced analytics",
				"Links active for 2 months",
				"No watermark",
				"Email support",
				"Analytics Export",
			),
			CTA:       "Start with Basic",
			Highlight: true,
		},
		{
			Name:        "Pro",
			Description: "For growing businesses",
			Price:       "$99",
			AnnualPrice: "$79",
			Period:      "/month",
			Features: available(
				"Up to 100 links",
				"10GB file limit",
				"Advanced analytics",
				"Links active for 3 months",
				"No watermark",
				"Priority support",
				"Heatmap Analytics",
				"Custom Domain",
			),
			CTA: "Start with Pro",
		},
		{
			Name:        "Enterprise",
			Description: "For organisations with custom needs",
			Price:       "Custom Pricing",
			Features: available(
				"Unlimited links",
				"Negotiable file limit",
				"Custom link duration",
				"Advanced heatmap analytics",
				"Advanced analytics export",
				"Priority support",
				"API access",
			),
			CTA: "Contact Us",
		},
	}
}

func features() []models.Feature {
	return []models.Feature{
		{Title: "Analytics dashboard", Description: "Simple metrics to understand who's viewing your content"},
		{Title: "Custom reports", Description: "Export and share performance data with your team"},
		{Title: "Audience insights", Description: "Track demographic data and viewer engagement"},
		{Title: "View duration", Description: "See how long people spend on your content"},
	}
}

func faqs() []models.FAQ {
	return []models.FAQ{
		{
			Question: "Which file formats can I share with SendNow?",
			Answer:   "We support a wide range of formats including PDFs, Word/Excel docs, PPTs, images (JPG/PNG/GIF) and videos (MP4/AVI). You can also link-to-link files for additional flexibility. File size limits vary by plan.",
		},
		{
			Question: "How long do my links stay active?",
			Answer:   "Free: 7 days\nBasic: Up to 2 months even if you cancel\nPro: Up to 3 months post-cancellation\nEnterprise: Custom durations available",
		},
		{
			Question: "Can I export my analytics data?",
			Answer:   "Yes! Analytics exports are available on Basic, Pro, and Enterprise plans. The free plan provides in-app statistics only without download options.",
		},
		{
			Question: "What video analytics are provided?",
			Answer:   "We track total watch time, play/pause events, seeking behavior, rewinds and drop-off points. Pro and Enterprise plans include heatmaps that visualize where viewers engage most with your video content.",
		},
		{
			Question: "Is my data secure and private?",
			Answer:   "Absolutely. We use industry-standard SSL/TLS encryption in transit and AES-256 encryption at rest. We're GDPR-compliant and maintain strict privacy protocols for all user content.",
		},
		{
			Question: "Can I customize my link branding?",
			Answer:   "Yes, custom domains are available on Pro and Enterprise plans. This allows you to maintain your brand identity while accessing all our analytics features.",
		},
	}
}

func testimonials() []models.Testimonial {
	return []models.Testimonial{
		{
			Name:   "Sarah M.",
			Title:  "Marketing Manager",
			Quote:  "SendNow has completely changed how I understand my audience. As a marketer, I used to guess which parts of my presentations were resonating. Now, with SendNow's heatmaps, I have clear visual data that's helping me refine my content for better engagement.",
			Rating: 5,
		},
		{
			Name:   "Raj Patel",
			Title:  "Content Creator",
			Quote:  "As a video creator, knowing if people are actually watching my entire video or dropping off is crucial. SendNow's detailed video analytics, showing watch time and even when viewers rewind, is a game-changer. I can now tailor my content to keep my audience hooked.",
			Rating: 5,
		},
		{
			Name:   "Lisa K.",
			Title:  "Small Business Owner",
			Quote:  "For my small business, SendNow is an absolute steal. The free plan allowed me to share important documents with clients professionally, and I got more insight than just knowing if they clicked. Upgrading to the Basic plan was a no-brainer.",
			Rating: 5,
		},
	}
}

func statCards() []models.StatCard {
	return []models.StatCard{
		{Title: "Total Sessions", Value: "38,774"},
		{Title: "Time Spent", Value: "1h 27m"},
		{Title: "Unique Visitors", Value: "1,337"},
		{Title: "Bounce Rate", Value: "12.76%"},
	}
}
