package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"linkfolio/internal/config"
	"linkfolio/internal/db"
	"linkfolio/internal/model"
	"linkfolio/internal/repository"
)

type seedCategory struct {
	name string
	slug string
}

var seedCategories = []seedCategory{
	{"Technology", "technology"},
	{"Travel", "travel"},
	{"Food", "food"},
	{"Health", "health"},
	{"Art & Design", "art"},
	{"Science", "science"},
}

type seedContent struct {
	title        string
	description  string
	imageURL     string
	categorySlug string
	readTime     int
	featured     bool
}

var seedContents = []seedContent{
	{
		title:        "The Future of AI in Everyday Life",
		description:  "Exploring how artificial intelligence is transforming our daily routines and what to expect in the coming years.",
		imageURL:     "https://images.unsplash.com/photo-1526498460520-4c246339dccb",
		categorySlug: "technology",
		readTime:     5,
		featured:     true,
	},
	{
		title:        "Hidden Gems: Unexplored Mountain Trails",
		description:  "Discover breathtaking mountain trails that remain untouched by mass tourism and offer authentic experiences.",
		imageURL:     "https://images.unsplash.com/photo-1527631746610-bca00a040d60",
		categorySlug: "travel",
		readTime:     8,
		featured:     true,
	},
	{
		title:        "Simple Meal Prep for Busy Professionals",
		description:  "Learn how to prepare nutritious meals for the entire week in just two hours, saving time and promoting healthier eating habits.",
		imageURL:     "https://images.unsplash.com/photo-1565299507177-b0ac66763828",
		categorySlug: "food",
		readTime:     4,
		featured:     true,
	},
	{
		title:        "5-Minute Meditation Techniques",
		description:  "Quick meditation techniques that can be practiced anywhere to reduce stress and improve focus.",
		imageURL:     "https://images.unsplash.com/photo-1517836357463-d25dfeac3438",
		categorySlug: "health",
		readTime:     3,
		featured:     false,
	},
	{
		title:        "Recent Breakthroughs in Astronomy",
		description:  "The latest discoveries and breakthroughs in the field of astronomy and space exploration.",
		imageURL:     "https://images.unsplash.com/photo-1532094349884-543bc11b234d",
		categorySlug: "science",
		readTime:     6,
		featured:     false,
	},
	{
		title:        "Digital Art Fundamentals",
		description:  "Basic principles and techniques for creating stunning digital artwork.",
		imageURL:     "https://images.unsplash.com/photo-1513364776144-60967b0f800f",
		categorySlug: "art",
		readTime:     7,
		featured:     false,
	},
	{
		title:        "Next-Gen Gaming Hardware",
		description:  "A look at the latest gaming hardware and technologies that are revolutionizing the gaming industry.",
		imageURL:     "https://images.unsplash.com/photo-1550745165-9bc0b252726f",
		categorySlug: "technology",
		readTime:     5,
		featured:     false,
	},
}

func main() {
	log.Info("starting seed script")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UserLink{},
		&model.Category{},
		&model.Content{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	categoryRepo := repository.NewCategoryRepository(gormDB)
	contentRepo := repository.NewContentRepository(gormDB)
	ctx := context.Background()

	// Idempotent: only an empty categories table gets seeded.
	existing, err := categoryRepo.ListAll(ctx)
	if err != nil {
		log.Fatalf("list categories: %v", err)
	}
	if len(existing) > 0 {
		log.WithField("categories", len(existing)).Info("reference data already present, nothing to do")
		return
	}

	bySlug := make(map[string]uint, len(seedCategories))
	for _, sc := range seedCategories {
		category := &model.Category{Name: sc.name, Slug: sc.slug}
		if err := categoryRepo.Create(ctx, category); err != nil {
			log.Fatalf("create category %q: %v", sc.slug, err)
		}
		bySlug[sc.slug] = category.ID
	}
	log.WithField("count", len(seedCategories)).Info("categories seeded")

	created := 0
	for _, sc := range seedContents {
		categoryID, ok := bySlug[sc.categorySlug]
		if !ok {
			log.Warnf("skipping content %q: unknown category %q", sc.title, sc.categorySlug)
			continue
		}
		content := &model.Content{
			Title:       sc.title,
			Description: sc.description,
			ImageURL:    sc.imageURL,
			CategoryID:  categoryID,
			ReadTime:    sc.readTime,
			Featured:    sc.featured,
			CreatedAt:   time.Now(),
		}
		if err := contentRepo.Create(ctx, content); err != nil {
			log.Fatalf("create content %q: %v", sc.title, err)
		}
		created++
	}

	log.WithFields(log.Fields{
		"categories": len(seedCategories),
		"contents":   created,
	}).Info("seed completed")
}
