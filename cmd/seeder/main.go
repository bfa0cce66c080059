// Command seeder populates the symptom catalog and default editorial
// content. It is idempotent: catalog names already present are skipped and
// editorial defaults are only inserted into an empty table.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/lunara-app/lunara-backend/internal/adapter/postgres"
	contentrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/content"
	symptomrepo "github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptom"
	"github.com/lunara-app/lunara-backend/internal/app"
	"github.com/lunara-app/lunara-backend/internal/config"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

var catalog = []domain.Symptom{
	{Name: "Cramps", Category: "pain"},
	{Name: "Headache", Category: "pain"},
	{Name: "Back pain", Category: "pain"},
	{Name: "Breast tenderness", Category: "pain"},
	{Name: "Mood swings", Category: "mood"},
	{Name: "Irritability", Category: "mood"},
	{Name: "Anxiety", Category: "mood"},
	{Name: "Bloating", Category: "digestive"},
	{Name: "Nausea", Category: "digestive"},
	{Name: "Acne", Category: "skin"},
	{Name: "Fatigue", Category: "energy"},
	{Name: "Insomnia", Category: "energy"},
}

var defaultCards = []domain.InfoCard{
	{Icon: "droplet", Title: "Stay hydrated", Description: "Drinking enough water eases bloating and headaches.", Position: 1},
	{Icon: "moon", Title: "Sleep matters", Description: "A steady sleep schedule softens mood swings.", Position: 2},
	{Icon: "leaf", Title: "Gentle movement", Description: "Light exercise can relieve cramps.", Position: 3},
}

var defaultSections = []domain.AccordionSection{
	{Title: "Menstrual phase", Content: "The cycle starts on the first day of bleeding. The uterine lining is shed.", Position: 1},
	{Title: "Follicular phase", Content: "Estrogen rises as follicles mature in the ovaries.", Position: 2},
	{Title: "Ovulation", Content: "A mature egg is released around the middle of the cycle.", Position: 3},
	{Title: "Luteal phase", Content: "Progesterone prepares the body for a possible pregnancy.", Position: 4},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	symptoms := symptomrepo.New(pool)
	editorial := contentrepo.New(pool)

	seeded := 0
	for _, s := range catalog {
		if _, err := symptoms.GetByName(ctx, s.Name); err == nil {
			continue
		} else if !errors.Is(err, domain.ErrNotFound) {
			logger.Error("check symptom", slog.String("name", s.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		s.ID = uuid.New()
		s.CreatedAt = time.Now()
		if _, err := symptoms.Create(ctx, &s); err != nil {
			logger.Error("seed symptom", slog.String("name", s.Name), slog.String("error", err.Error()))
			os.Exit(1)
		}
		seeded++
	}
	logger.Info("symptom catalog seeded", slog.Int("created", seeded))

	cards, err := editorial.ListCards(ctx)
	if err != nil {
		logger.Error("list cards", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(cards) == 0 {
		for _, c := range defaultCards {
			c.ID = uuid.New()
			now := time.Now()
			c.CreatedAt, c.UpdatedAt = now, now
			if _, err := editorial.CreateCard(ctx, &c); err != nil {
				logger.Error("seed card", slog.String("title", c.Title), slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		logger.Info("info cards seeded", slog.Int("count", len(defaultCards)))
	}

	sections, err := editorial.ListSections(ctx)
	if err != nil {
		logger.Error("list sections", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if len(sections) == 0 {
		for _, s := range defaultSections {
			s.ID = uuid.New()
			now := time.Now()
			s.CreatedAt, s.UpdatedAt = now, now
			if _, err := editorial.CreateSection(ctx, &s); err != nil {
				logger.Error("seed section", slog.String("title", s.Title), slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
		logger.Info("accordion sections seeded", slog.Int("count", len(defaultSections)))
	}
}
