package content

import "github.com/kirillkom/brandboost/internal/core/domain"

// fallbackCopy is served when the remote model is unavailable. {features}
// is substituted with the comma-separated feature list.
var fallbackCopy = [domain.NumContentTypes][domain.NumTones][domain.NumLanguages]string{
	domain.ProductDescription: {
		domain.Professional: {
			domain.English: "Introducing {product_name}, a premium {category} designed for {target_audience}. This exceptional product features {features}. Experience the perfect blend of quality and innovation with {product_name}.",
			domain.French:  "Présentation de {product_name}, un {category} premium conçu pour {target_audience}. Ce produit exceptionnel présente {features}. Découvrez le parfait équilibre entre qualité et innovation avec {product_name}.",
		},
		domain.Playful: {
			domain.English: "🎉 Meet {product_name} - the {category} that's about to become your new obsession! Perfect for {target_audience}, it's packed with {features}. Get ready to fall in love! 💕",
			domain.French:  "🎉 Rencontrez {product_name} - le {category} qui va devenir votre nouvelle obsession ! Parfait pour {target_audience}, il est rempli de {features}. Préparez-vous à tomber amoureux ! 💕",
		},
		domain.Luxury: {
			domain.English: "Indulge in the exquisite {product_name}, a distinguished {category} crafted for discerning {target_audience}. Featuring {features}, this masterpiece represents the pinnacle of luxury and sophistication.",
			domain.French:  "Savourez l'exquis {product_name}, un {category} distingué conçu pour {target_audience} exigeants. Avec {features}, ce chef-d'œuvre représente le summum du luxe et de la sophistication.",
		},
		domain.Casual: {
			domain.English: "Hey there! Check out {product_name} - it's a pretty cool {category} that {target_audience} are going to love. It's got {features} and honestly, it's just what you need.",
			domain.French:  "Salut ! Découvrez {product_name} - c'est un {category} plutôt cool que {target_audience} vont adorer. Il a {features} et honnêtement, c'est exactement ce dont vous avez besoin.",
		},
	},
	domain.SocialPost: {
		domain.Professional: {
			domain.English: "Discover {product_name} - the {category} solution for {target_audience}. Features include {features}. #ProductLaunch #Innovation #Quality",
			domain.French:  "Découvrez {product_name} - la solution {category} pour {target_audience}. Caractéristiques : {features}. #LancementProduit #Innovation #Qualité",
		},
		domain.Playful: {
			domain.English: "🚀 {product_name} is here and it's AMAZING! Perfect for {target_audience} who want {features}. Who's excited? 🙋‍♀️ #NewProduct #Excited #MustHave",
			domain.French:  "🚀 {product_name} est là et c'est INCROYABLE ! Parfait pour {target_audience} qui veulent {features}. Qui est excité ? 🙋‍♀️ #NouveauProduit #Excité #Indispensable",
		},
		domain.Luxury: {
			domain.English: "Experience the epitome of luxury with {product_name}. This exclusive {category} offers {features} for the most discerning {target_audience}. #Luxury #Exclusive #Premium",
			domain.French:  "Vivez l'épitomé du luxe avec {product_name}. Ce {category} exclusif offre {features} pour les {target_audience} les plus exigeants. #Luxe #Exclusif #Premium",
		},
		domain.Casual: {
			domain.English: "Just tried {product_name} and wow! 😍 Great {category} for {target_audience}. Love that it has {features}. Highly recommend! #Review #Recommendation",
			domain.French:  "Je viens d'essayer {product_name} et wow ! 😍 Super {category} pour {target_audience}. J'adore qu'il ait {features}. Je recommande fortement ! #Avis #Recommandation",
		},
	},
	domain.Email: {
		domain.Professional: {
			domain.English: "Subject: Introducing {product_name} - The {category} Solution You've Been Waiting For\n\nDear Valued Customer,\n\nWe're excited to present {product_name}, a premium {category} designed specifically for {target_audience}. This innovative product features {features}.\n\nBest regards,\nThe BrandBoost Team",
			domain.French:  "Objet : Présentation de {product_name} - La solution {category} que vous attendiez\n\nCher client,\n\nNous sommes ravis de vous présenter {product_name}, un {category} premium conçu spécifiquement pour {target_audience}. Ce produit innovant présente {features}.\n\nCordialement,\nL'équipe BrandBoost",
		},
		domain.Playful: {
			domain.English: "Subject: 🎉 {product_name} is HERE! (And it's amazing!)\n\nHey there!\n\nGuess what? {product_name} just dropped and it's everything {target_audience} have been dreaming of! With {features}, this {category} is about to change your life! 💫\n\nCheers,\nThe BrandBoost Squad",
			domain.French:  "Objet : 🎉 {product_name} est LÀ ! (Et c'est incroyable !)\n\nSalut !\n\nDevine quoi ? {product_name} vient de sortir et c'est tout ce que {target_audience} rêvaient ! Avec {features}, ce {category} va changer votre vie ! 💫\n\nSalut,\nL'équipe BrandBoost",
		},
		domain.Luxury: {
			domain.English: "Subject: Exclusive Invitation: Discover {product_name}\n\nDear Esteemed Client,\n\nWe are honored to invite you to experience {product_name}, our most exclusive {category} offering. Crafted for the discerning {target_audience}, it embodies {features}.\n\nWarm regards,\nBrandBoost Luxury Division",
			domain.French:  "Objet : Invitation exclusive : Découvrez {product_name}\n\nCher client estimé,\n\nNous avons l'honneur de vous inviter à découvrir {product_name}, notre offre {category} la plus exclusive. Conçu pour les {target_audience} exigeants, il incarne {features}.\n\nCordialement,\nDivision Luxe BrandBoost",
		},
		domain.Casual: {
			domain.English: "Subject: You'll love {product_name}!\n\nHi!\n\nJust wanted to share something cool with you - {product_name}! It's this awesome {category} that {target_audience} are totally into. The best part? It comes with {features}.\n\nTake care,\nThe BrandBoost Team",
			domain.French:  "Objet : Vous allez adorer {product_name} !\n\nSalut !\n\nJe voulais juste partager quelque chose de cool avec toi - {product_name} ! C'est ce {category} génial que {target_audience} adorent. Le meilleur ? Il vient avec {features}.\n\nÀ bientôt,\nL'équipe BrandBoost",
		},
	},
}
