package content

import "time"

// MockPosts is the local article source used when no CMS is configured
func MockPosts() []Post {
	return []Post{
		{
			Slug:        "soil-carbon-explained",
			Title:       "Soil Carbon, Explained",
			Excerpt:     "How regenerative practices turn farmland into a carbon sink.",
			Body:        "Cover cropping, reduced tillage and rotational grazing all raise soil organic carbon...",
			PublishedAt: time.Date(2024, 2, 12, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "understanding-vintage-years",
			Title:       "Understanding Vintage Years",
			Excerpt:     "Why the year a credit was generated matters for pricing.",
			Body:        "A credit's vintage is the year its emission reduction occurred...",
			PublishedAt: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC),
		},
		{
			Slug:        "inside-the-verification-queue",
			Title:       "Inside the Verification Queue",
			Excerpt:     "What happens between submission and approval.",
			Body:        "Every project passes document review, MRV checks and a final decision...",
			PublishedAt: time.Date(2024, 4, 18, 9, 0, 0, 0, time.UTC),
		},
	}
}
