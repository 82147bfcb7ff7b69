package content

import (
	"strings"

	"github.com/kirillkom/brandboost/internal/core/domain"
)

var promptTemplates = [domain.NumContentTypes][domain.NumTones][domain.NumLanguages]string{
	domain.ProductDescription: {
		domain.Professional: {
			domain.English: promptEN("Write a professional product description",
				"Professional, informative tone",
				"Highlight key features and benefits",
				"Include SEO-friendly keywords",
				"150-200 words",
				"Focus on value proposition and quality"),
			domain.French: promptFR("Écrivez une description de produit professionnelle",
				"Ton professionnel et informatif",
				"Mettre en avant les caractéristiques et avantages clés",
				"Inclure des mots-clés SEO",
				"150-200 mots",
				"Se concentrer sur la proposition de valeur et la qualité"),
		},
		domain.Playful: {
			domain.English: promptEN("Write a playful and engaging product description",
				"Fun, energetic tone with personality",
				"Use creative language and emojis",
				"Make it shareable and memorable",
				"120-180 words",
				"Focus on excitement and user experience"),
			domain.French: promptFR("Écrivez une description de produit ludique et engageante",
				"Ton amusant et énergique avec de la personnalité",
				"Utiliser un langage créatif et des emojis",
				"Rendre partageable et mémorable",
				"120-180 mots",
				"Se concentrer sur l'excitation et l'expérience utilisateur"),
		},
		domain.Luxury: {
			domain.English: promptEN("Write a sophisticated luxury product description",
				"Elegant, premium tone",
				"Emphasize exclusivity and craftsmanship",
				"Use refined vocabulary",
				"180-220 words",
				"Focus on quality, prestige, and sophistication"),
			domain.French: promptFR("Écrivez une description de produit de luxe sophistiquée",
				"Ton élégant et premium",
				"Souligner l'exclusivité et l'artisanat",
				"Utiliser un vocabulaire raffiné",
				"180-220 mots",
				"Se concentrer sur la qualité, le prestige et la sophistication"),
		},
		domain.Casual: {
			domain.English: promptEN("Write a casual, friendly product description",
				"Conversational, approachable tone",
				"Use everyday language",
				"Be relatable and down-to-earth",
				"130-170 words",
				"Focus on practical benefits and ease of use"),
			domain.French: promptFR("Écrivez une description de produit décontractée et amicale",
				"Ton conversationnel et accessible",
				"Utiliser un langage quotidien",
				"Être relatable et terre-à-terre",
				"130-170 mots",
				"Se concentrer sur les avantages pratiques et la facilité d'utilisation"),
		},
	},
	domain.SocialPost: {
		domain.Professional: {
			domain.English: promptEN("Create a professional social media post",
				"Professional yet engaging tone",
				"Include relevant hashtags",
				"Call-to-action",
				"100-150 words",
				"Platform-agnostic (works for LinkedIn, Facebook, Twitter)"),
			domain.French: promptFR("Créez un post de médias sociaux professionnel",
				"Ton professionnel mais engageant",
				"Inclure des hashtags pertinents",
				"Appel à l'action",
				"100-150 mots",
				"Indépendant de la plateforme (fonctionne pour LinkedIn, Facebook, Twitter)"),
		},
		domain.Playful: {
			domain.English: promptEN("Create a fun, engaging social media post",
				"Playful, energetic tone with emojis",
				"Creative hashtags",
				"Strong call-to-action",
				"80-120 words",
				"Highly shareable content"),
			domain.French: promptFR("Créez un post de médias sociaux amusant et engageant",
				"Ton ludique et énergique avec des emojis",
				"Hashtags créatifs",
				"Appel à l'action fort",
				"80-120 mots",
				"Contenu hautement partageable"),
		},
		domain.Luxury: {
			domain.English: promptEN("Create a sophisticated luxury social media post",
				"Elegant, aspirational tone",
				"Premium hashtags",
				"Exclusive feel",
				"100-140 words",
				"Focus on exclusivity and quality"),
			domain.French: promptFR("Créez un post de médias sociaux de luxe sophistiqué",
				"Ton élégant et inspirant",
				"Hashtags premium",
				"Sentiment d'exclusivité",
				"100-140 mots",
				"Se concentrer sur l'exclusivité et la qualité"),
		},
		domain.Casual: {
			domain.English: promptEN("Create a casual, relatable social media post",
				"Conversational, friendly tone",
				"Relatable hashtags",
				"Easy-going call-to-action",
				"90-130 words",
				"Authentic and approachable"),
			domain.French: promptFR("Créez un post de médias sociaux décontracté et relatable",
				"Ton conversationnel et amical",
				"Hashtags relatables",
				"Appel à l'action décontracté",
				"90-130 mots",
				"Authentique et accessible"),
		},
	},
	domain.Email: {
		domain.Professional: {
			domain.English: promptEN("Write a professional email marketing content",
				"Professional, trustworthy tone",
				"Clear subject line suggestion",
				"Compelling body content",
				"Strong call-to-action",
				"200-300 words",
				"Focus on benefits and value"),
			domain.French: promptFR("Écrivez un contenu d'email marketing professionnel",
				"Ton professionnel et digne de confiance",
				"Suggestion d'objet claire",
				"Contenu de corps convaincant",
				"Appel à l'action fort",
				"200-300 mots",
				"Se concentrer sur les avantages et la valeur"),
		},
		domain.Playful: {
			domain.English: promptEN("Write a fun, engaging email marketing content",
				"Energetic, fun tone",
				"Creative subject line",
				"Engaging storytelling",
				"Exciting call-to-action",
				"180-250 words",
				"Focus on excitement and engagement"),
			domain.French: promptFR("Écrivez un contenu d'email marketing amusant et engageant",
				"Ton énergique et amusant",
				"Objet créatif",
				"Storytelling engageant",
				"Appel à l'action excitant",
				"180-250 mots",
				"Se concentrer sur l'excitation et l'engagement"),
		},
		domain.Luxury: {
			domain.English: promptEN("Write a sophisticated luxury email marketing content",
				"Elegant, premium tone",
				"Exclusive subject line",
				"Sophisticated language",
				"Refined call-to-action",
				"220-320 words",
				"Focus on exclusivity and prestige"),
			domain.French: promptFR("Écrivez un contenu d'email marketing de luxe sophistiqué",
				"Ton élégant et premium",
				"Objet exclusif",
				"Langage sophistiqué",
				"Appel à l'action raffiné",
				"220-320 mots",
				"Se concentrer sur l'exclusivité et le prestige"),
		},
		domain.Casual: {
			domain.English: promptEN("Write a casual, friendly email marketing content",
				"Conversational, approachable tone",
				"Friendly subject line",
				"Personal touch",
				"Easy-going call-to-action",
				"190-280 words",
				"Focus on relatability and ease"),
			domain.French: promptFR("Écrivez un contenu d'email marketing décontracté et amical",
				"Ton conversationnel et accessible",
				"Objet amical",
				"Touche personnelle",
				"Appel à l'action décontracté",
				"190-280 mots",
				"Se concentrer sur la relatabilité et la facilité"),
		},
	},
}

func promptEN(task string, requirements ...string) string {
	return buildPrompt(
		task+" for "+phProductName+" in the "+phCategory+" category.",
		"Key features: ", "Target audience: ", "Requirements:",
		requirements,
	)
}

func promptFR(task string, requirements ...string) string {
	return buildPrompt(
		task+" pour "+phProductName+" dans la catégorie "+phCategory+".",
		"Caractéristiques clés: ", "Public cible: ", "Exigences:",
		requirements,
	)
}

func buildPrompt(intro, featuresLabel, audienceLabel, requirementsLabel string, requirements []string) string {
	var b strings.Builder
	b.WriteString(intro)
	b.WriteString("\n")
	b.WriteString(featuresLabel + phFeatures + "\n")
	b.WriteString(audienceLabel + phTargetAudience + "\n\n")
	b.WriteString(requirementsLabel)
	for _, req := range requirements {
		b.WriteString("\n- " + req)
	}
	return b.String()
}
