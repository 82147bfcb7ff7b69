package content

import "github.com/kirillkom/brandboost/internal/core/domain"

var recommendations = [domain.NumContentTypes][domain.NumTones]string{
	domain.ProductDescription: {
		domain.Professional: "Professional tone is recommended for product pages to boost SEO and build credibility with customers.",
		domain.Playful:      "Playful tone works great for lifestyle products and social media integration to increase engagement.",
		domain.Luxury:       "Luxury tone is perfect for premium products to justify higher prices and attract affluent customers.",
		domain.Casual:       "Casual tone helps make products more approachable and relatable to everyday consumers.",
	},
	domain.SocialPost: {
		domain.Professional: "Professional tone is ideal for LinkedIn and B2B platforms to maintain brand authority.",
		domain.Playful:      "Playful tone is best for social media campaigns to increase engagement and shareability.",
		domain.Luxury:       "Luxury tone creates aspirational content that drives premium brand perception.",
		domain.Casual:       "Casual tone builds authentic connections and encourages user-generated content.",
	},
	domain.Email: {
		domain.Professional: "Professional tone builds trust and is perfect for transactional and informational emails.",
		domain.Playful:      "Playful tone increases open rates and engagement in promotional campaigns.",
		domain.Luxury:       "Luxury tone creates exclusivity and drives high-value customer actions.",
		domain.Casual:       "Casual tone improves deliverability and creates personal connections with subscribers.",
	},
}
