package store

import (
	"time"

	"glowcart/internal/domain/catalog"
	"glowcart/internal/domain/content"
	"glowcart/internal/util"
)

// Seed loads the launch catalog into an empty store. Safe to skip in
// tests that want a blank store.
func Seed(s *Store) {
	s.Lock()
	defer s.Unlock()

	now := time.Now()

	cat := func(name, desc string) int64 {
		id := s.NextID("categories")
		s.Categories[id] = catalog.Category{
			ID: id, Name: name, Slug: util.Slugify(name), Description: desc, CreatedAt: now,
		}
		return id
	}
	cleansers := cat("Cleansers", "Gentle face and body cleansers")
	serums := cat("Serums", "Targeted treatment serums")
	moisturizers := cat("Moisturizers", "Daily hydration for face and body")
	masks := cat("Masks", "Weekly treatment masks")
	bodycare := cat("Body Care", "Butters, scrubs and body oils")
	sunscreen := cat("Sunscreen", "Broad-spectrum sun protection")

	brand := func(name string) int64 {
		id := s.NextID("brands")
		s.Brands[id] = catalog.Brand{ID: id, Name: name, Slug: util.Slugify(name)}
		return id
	}
	pureglow := brand("PureGlow")
	botanica := brand("Botanica Labs")
	velvet := brand("Velvet Root")
	solara := brand("Solara")

	for _, name := range []string{"Normal", "Dry", "Oily", "Combination", "Sensitive"} {
		id := s.NextID("skin_types")
		s.SkinTypes[id] = catalog.SkinType{ID: id, Name: name, Slug: util.Slugify(name)}
	}
	for _, name := range []string{"Acne", "Aging", "Hyperpigmentation", "Dryness", "Redness", "Dullness"} {
		id := s.NextID("skin_concerns")
		s.SkinConcerns[id] = catalog.SkinConcern{ID: id, Name: name, Slug: util.Slugify(name)}
	}

	fl := func(v float64) *float64 { return &v }

	prod := func(p catalog.Product) int64 {
		id := s.NextID("products")
		p.ID = id
		p.Slug = util.Slugify(p.Name)
		p.CreatedAt = now
		s.Products[id] = p
		return id
	}
	gelCleanser := prod(catalog.Product{
		Name: "Green Tea Gel Cleanser", Description: "Foaming gel cleanser with green tea and aloe for daily use.",
		Price: 24.50, CategoryID: cleansers, BrandID: pureglow, StockQty: 80,
		IsBestSeller: true, IsOrganic: true, Image: "/images/green-tea-gel-cleanser.jpg",
	})
	prod(catalog.Product{
		Name: "Oat Milk Cream Cleanser", Description: "Creamy, non-stripping cleanser for dry and sensitive skin.",
		Price: 22.00, CategoryID: cleansers, BrandID: velvet, StockQty: 64,
		Image: "/images/oat-milk-cream-cleanser.jpg",
	})
	vitcSerum := prod(catalog.Product{
		Name: "Vitamin C Brightening Serum", Description: "15% vitamin C with ferulic acid to fade dark spots and boost glow.",
		Price: 45.99, OriginalPrice: fl(52.00), CategoryID: serums, BrandID: pureglow, StockQty: 42,
		IsBestSeller: true, IsFeatured: true, Image: "/images/vitamin-c-serum.jpg",
	})
	haSerum := prod(catalog.Product{
		Name: "Hyaluronic Hydra Serum", Description: "Multi-weight hyaluronic acid serum for deep, lasting hydration.",
		Price: 32.50, CategoryID: serums, BrandID: botanica, StockQty: 55,
		IsBestSeller: true, Image: "/images/hyaluronic-serum.jpg",
	})
	prod(catalog.Product{
		Name: "Bakuchiol Renewal Serum", Description: "Plant-based retinol alternative, gentle enough for nightly use.",
		Price: 48.00, CategoryID: serums, BrandID: botanica, StockQty: 30,
		IsNew: true, IsOrganic: true, Image: "/images/bakuchiol-serum.jpg",
	})
	nightCream := prod(catalog.Product{
		Name: "Ceramide Night Cream", Description: "Barrier-repair night cream with ceramides and squalane.",
		Price: 38.75, CategoryID: moisturizers, BrandID: velvet, StockQty: 48,
		IsFeatured: true, Image: "/images/ceramide-night-cream.jpg",
	})
	prod(catalog.Product{
		Name: "Aloe Dew Gel Moisturizer", Description: "Weightless gel moisturizer for oily and combination skin.",
		Price: 26.00, CategoryID: moisturizers, BrandID: pureglow, StockQty: 72,
		IsNew: true, Image: "/images/aloe-dew-gel.jpg",
	})
	prod(catalog.Product{
		Name: "Pink Clay Detox Mask", Description: "Australian pink clay mask that decongests without over-drying.",
		Price: 29.90, CategoryID: masks, BrandID: botanica, StockQty: 38,
		Image: "/images/pink-clay-mask.jpg",
	})
	prod(catalog.Product{
		Name: "Overnight Honey Mask", Description: "Leave-on mask with manuka honey for a plump morning glow.",
		Price: 34.00, OriginalPrice: fl(40.00), CategoryID: masks, BrandID: velvet, StockQty: 25,
		IsNew: true, IsOrganic: true, Image: "/images/honey-mask.jpg",
	})
	bodyButter := prod(catalog.Product{
		Name: "Shea Whipped Body Butter", Description: "Rich whipped shea butter for elbows, knees and everywhere else.",
		Price: 28.75, CategoryID: bodycare, BrandID: velvet, StockQty: 90,
		IsBestSeller: true, IsOrganic: true, Image: "/images/shea-body-butter.jpg",
	})
	prod(catalog.Product{
		Name: "Coffee Body Scrub", Description: "Ground coffee and coconut oil scrub for smooth, even skin.",
		Price: 21.50, CategoryID: bodycare, BrandID: pureglow, StockQty: 66,
		Image: "/images/coffee-body-scrub.jpg",
	})
	prod(catalog.Product{
		Name: "Rosehip Body Oil", Description: "Fast-absorbing rosehip and jojoba oil blend for body and cuticles.",
		Price: 36.25, CategoryID: bodycare, BrandID: botanica, StockQty: 40,
		IsNew: true, Image: "/images/rosehip-body-oil.jpg",
	})
	spf50 := prod(catalog.Product{
		Name: "Invisible Shield SPF 50", Description: "No-cast mineral sunscreen that layers under makeup.",
		Price: 33.00, CategoryID: sunscreen, BrandID: solara, StockQty: 58,
		IsBestSeller: true, IsFeatured: true, Image: "/images/invisible-shield-spf50.jpg",
	})
	prod(catalog.Product{
		Name: "After-Sun Rescue Lotion", Description: "Cooling aloe and panthenol lotion for sun-stressed skin.",
		Price: 19.99, CategoryID: sunscreen, BrandID: solara, StockQty: 44,
		Image: "/images/after-sun-rescue.jpg",
	})

	rev := func(productID int64, author, location string, rating int, comment string, verified bool) {
		id := s.NextID("reviews")
		s.Reviews[id] = catalog.Review{
			ID: id, ProductID: productID, Author: author, Location: location,
			Rating: rating, Comment: comment, Verified: verified, CreatedAt: now,
		}
		p := s.Products[productID]
		p.RatingSum += rating
		p.ReviewCount++
		s.Products[productID] = p
	}
	rev(vitcSerum, "Amara O.", "Accra", 5, "Visible difference on my dark spots within three weeks.", true)
	rev(vitcSerum, "Lena K.", "Berlin", 4, "Lovely texture, slight citrus scent. Repurchasing.", true)
	rev(haSerum, "Priya S.", "Mumbai", 5, "My skin drinks this up. No pilling under sunscreen.", true)
	rev(gelCleanser, "Tomi A.", "Lagos", 4, "Cleans well without the tight feeling.", false)
	rev(nightCream, "Maya R.", "Toronto", 5, "Saved my winter skin. Rich but not greasy.", true)
	rev(bodyButter, "Chloe D.", "Sydney", 5, "Smells amazing and lasts all day.", true)
	rev(spf50, "Daniel F.", "Madrid", 4, "Truly invisible on deeper skin tones.", true)
	rev(spf50, "Ngozi E.", "Abuja", 5, "The only SPF that doesn't break me out.", true)

	post := func(title, excerpt, body, author string) {
		id := s.NextID("blog_posts")
		s.BlogPosts[id] = content.BlogPost{
			ID: id, Title: title, Slug: util.Slugify(title), Excerpt: excerpt,
			Body: body, Author: author, PublishedAt: now,
		}
	}
	post("Building a Minimal Skincare Routine",
		"Three steps that cover ninety percent of what your skin needs.",
		"Cleanse, moisturize, protect. Everything else is a targeted extra you add once the basics are consistent...",
		"Glowcart Team")
	post("Vitamin C, Explained",
		"What concentration actually matters and how to store it.",
		"L-ascorbic acid is the most studied form, but it oxidizes fast. Keep it dark, keep it cool, and use it within three months...",
		"Dr. Awele N.")
	post("Do You Really Need a Separate Body Sunscreen?",
		"Short answer: no. Long answer: it depends on texture.",
		"Any broad-spectrum SPF 30+ works anywhere on your skin. Body formulas just trade elegance for spreadability...",
		"Glowcart Team")

	testi := func(author, location, quote string, rating int) {
		id := s.NextID("testimonials")
		s.Testimonials[id] = content.Testimonial{ID: id, Author: author, Location: location, Quote: quote, Rating: rating}
	}
	testi("Sarah M.", "London", "My whole routine comes from here now. Shipping is fast and the consultation was spot on.", 5)
	testi("Kwame B.", "Kumasi", "Finally a store that explains ingredients instead of just selling hype.", 5)
	testi("Julia P.", "São Paulo", "The saved-for-later list is dangerous for my wallet.", 4)
}
