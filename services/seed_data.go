package services

import "swipess_server/models"

// Seed listings shown in every session before any backend data
// arrives. Immutable for the process lifetime.
var seedListings = map[models.ListingCategory][]models.Listing{
	models.CategoryProperty: {
		{
			ID: "p1", Title: "Penthouse Skyline", Category: models.CategoryProperty, Price: "€2.400/mo", Location: "MADRID, SALAMANCA",
			Image:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?auto=format&fit=crop&w=800&q=80",
			Description: "Luxurious penthouse with private elevator and 360-degree views of the city.",
			Tags:        []string{"luxury", "terrace", "central", "madrid", "penthouse"}, OwnerID: "dev", TransactionType: models.TransactionRent,
			Property: &models.PropertyDetails{Bedrooms: 3, Bathrooms: 2, Sqft: 180},
		},
		{
			ID: "p2", Title: "Modern Garden Villa", Category: models.CategoryProperty, Price: "€4.100/mo", Location: "BARCELONA, PEDRALBES",
			Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?auto=format&fit=crop&w=800&q=80",
			Description: "Stunning villa with private pool and automated garden lighting.",
			Tags:        []string{"pool", "garden", "family", "barcelona", "villa"}, OwnerID: "dev", TransactionType: models.TransactionRent,
			Property: &models.PropertyDetails{Bedrooms: 5, Bathrooms: 4, Sqft: 350},
		},
		{
			ID: "p3", Title: "Cozy Studio Loft", Category: models.CategoryProperty, Price: "€950/mo", Location: "VALENCIA, RUZAFA",
			Image:       "https://images.unsplash.com/photo-1536376074432-8d63d592bfde?auto=format&fit=crop&w=800&q=80",
			Description: "Industrial style loft in the trendiest neighborhood of Valencia.",
			Tags:        []string{"loft", "industrial", "wifi", "valencia"}, OwnerID: "dev", TransactionType: models.TransactionRent,
			Property: &models.PropertyDetails{Bedrooms: 1, Bathrooms: 1, Sqft: 45},
		},
		{
			ID: "p4", Title: "Rustic Country House", Category: models.CategoryProperty, Price: "€1.200/mo", Location: "SEVILLA",
			Image:       "https://images.unsplash.com/photo-1500382017468-9049fee74a62?auto=format&fit=crop&w=800&q=80",
			Description: "A quiet place away from the city noise.",
			Tags:        []string{"countryside", "quiet", "nature", "sevilla"}, OwnerID: "dev", TransactionType: models.TransactionRent,
			Property: &models.PropertyDetails{Bedrooms: 3, Bathrooms: 1, Sqft: 120},
		},
	},
	models.CategoryMoto: {
		{
			ID: "m1", Title: "Porsche Taycan 2023", Category: models.CategoryMoto, Price: "€92.000", Location: "BARCELONA, SPAIN",
			Image:       "https://images.unsplash.com/photo-1614200187524-dc4b892acf16?auto=format&fit=crop&w=800&q=80",
			Description: "Electric performance at its peak. Gentian Blue Metallic.",
			Tags:        []string{"electric", "porsche", "sport", "barcelona"}, OwnerID: "dev", TransactionType: models.TransactionSale,
			Vehicle: &models.VehicleDetails{Year: 2023, Mileage: "5.200 km", EngineSize: "400 kW"},
		},
		{
			ID: "m2", Title: "Ducati Panigale V4", Category: models.CategoryMoto, Price: "€24.500", Location: "MADRID, SPAIN",
			Image:       "https://images.unsplash.com/photo-1568772585407-9361f9bf3a87?auto=format&fit=crop&w=800&q=80",
			Description: "The ultimate track machine for the road. Racing red.",
			Tags:        []string{"racing", "ducati", "v4", "madrid"}, OwnerID: "dev", TransactionType: models.TransactionSale,
			Vehicle: &models.VehicleDetails{Year: 2022, Mileage: "1.800 km", EngineSize: "1103 cc"},
		},
	},
	models.CategoryBicycle: {
		{
			ID: "b1", Title: "Specialized S-Works", Category: models.CategoryBicycle, Price: "€8.500", Location: "REMOTE / EUROPE",
			Image:       "https://images.unsplash.com/photo-1532298229144-0ee0c57515ec?auto=format&fit=crop&w=800&q=80",
			Description: "Competition-grade carbon fiber road bike. Ultra-lightweight.",
			Tags:        []string{"road", "carbon", "pro", "remote"}, OwnerID: "dev", TransactionType: models.TransactionSale,
			Bicycle: &models.BicycleDetails{FrameMaterial: "Fact 12r Carbon", Weight: "6.8 kg"},
		},
		{
			ID: "b2", Title: "Santa Cruz Nomad", Category: models.CategoryBicycle, Price: "€5.200", Location: "ANDORRA",
			Image:       "https://images.unsplash.com/photo-1576433732326-44d5ff9a0c5e?auto=format&fit=crop&w=800&q=80",
			Description: "Enduro beast for the roughest trails. CC Carbon frame.",
			Tags:        []string{"mtb", "enduro", "carbon", "andorra"}, OwnerID: "dev", TransactionType: models.TransactionSale,
			Bicycle: &models.BicycleDetails{FrameMaterial: "Carbon CC", Weight: "14.2 kg"},
		},
	},
	models.CategoryTasker: {
		{
			ID: "t1", Title: "Lead React Architect", Category: models.CategoryTasker, Price: "€85/hr", Location: "REMOTE / BERLIN",
			Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&w=800&q=80",
			Description: "Expert in high-performance WebGL and React applications.",
			Tags:        []string{"react", "webgl", "expert", "remote", "berlin"}, OwnerID: "dev", TransactionType: models.TransactionHourly,
			Tasker: &models.TaskerDetails{ExperienceLevel: "Expert", Skills: []string{"TypeScript", "Three.js", "Next.js"}, HourlyRate: "€85.00", ProjectFee: "€2.5k+", Duration: "Ongoing"},
		},
		{
			ID: "t2", Title: "UI Designer", Category: models.CategoryTasker, Price: "€45/hr", Location: "REMOTE / MADRID",
			Image:       "https://images.unsplash.com/photo-1558655146-d09347e92766?auto=format&fit=crop&w=800&q=80",
			Description: "Creating minimalist interfaces for modern SaaS platforms.",
			Tags:        []string{"figma", "ui", "saas", "remote", "madrid"}, OwnerID: "dev", TransactionType: models.TransactionHourly,
			Tasker: &models.TaskerDetails{ExperienceLevel: "Intermediate", Skills: []string{"Figma", "Prototyping", "Design Systems"}, HourlyRate: "€45.00", ProjectFee: "€1k+", Duration: "Project Basis"},
		},
	},
}

// Seed prospects for the owner-side swipe flow.
var seedProspects = []models.ClientProfile{
	{
		ID: "c1", Name: "Marco Rossi", Avatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=800&h=800&fit=crop",
		Bio:        "Looking for a 2-bedroom apartment in Madrid for a 6-month stay. Prefers modern interiors and high-speed internet for remote work.",
		LookingFor: models.CategoryProperty, Budget: "€2.500", Location: "MADRID, SPAIN", ReliabilityScore: 98,
	},
	{
		ID: "c2", Name: "Sofia Chen", Avatar: "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=800&h=800&fit=crop",
		Bio:        "Pro cyclist looking for a high-end road bike for the upcoming season. Needs carbon frame and electronic shifting.",
		LookingFor: models.CategoryBicycle, Budget: "€10.000", Location: "REMOTE", ReliabilityScore: 100,
	},
	{
		ID: "c3", Name: "Erik Nilsson", Avatar: "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=800&h=800&fit=crop",
		Bio:        "Full-stack developer looking for a Senior React Architect to audit a core project. Focused on performance and scalability.",
		LookingFor: models.CategoryTasker, Budget: "€100/hr", Location: "BERLIN, GERMANY", ReliabilityScore: 95,
	},
}

// SeedListings returns the immutable seed set for a category.
func SeedListings(category models.ListingCategory) []models.Listing {
	return seedListings[category]
}

// SeedProspects returns the owner-side prospect seed set.
func SeedProspects() []models.ClientProfile {
	return seedProspects
}
