// Команда seed наполняет базу демонстрационными данными через фабрики
// фейковых моделей: пользователи, агентства, теги, профили со связями
// и полиморфные загрузки.
package main

import (
	"context"

	"modelkit/faker"
	"modelkit/internal/config"
	"modelkit/internal/database"
	"modelkit/internal/logger"
	"modelkit/internal/models"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.Server.Env)

	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("failed to open database", "error", err.Error())
	}

	ctx := context.Background()

	// Порядок важен: сначала модели без связей, затем зависимые от них
	users, err := faker.NewFactory[models.User](db).
		Persist(true).
		FakeMultiple(ctx, cfg.Seed.Users, cfg.Seed.Users)
	logger.SeedLog("User", len(users), err)
	if err != nil {
		logger.Fatal("seeding aborted", "model", "User")
	}

	agencies, err := faker.NewFactory[models.Agency](db).
		Persist(true).
		WithValidation().
		FakeMultiple(ctx, cfg.Seed.Agencies, cfg.Seed.Agencies)
	logger.SeedLog("Agency", len(agencies), err)
	if err != nil {
		logger.Fatal("seeding aborted", "model", "Agency")
	}

	tags, err := faker.NewFactory[models.Tag](db).
		Persist(true).
		FakeMultiple(ctx, cfg.Seed.Tags, cfg.Seed.Tags)
	logger.SeedLog("Tag", len(tags), err)
	if err != nil {
		logger.Fatal("seeding aborted", "model", "Tag")
	}

	// Профили ссылаются на агентства и синхронизируют теги
	profiles, err := faker.NewFactory[models.Profile](db).
		Persist(true).
		WithValidation().
		FakeMultiple(ctx, cfg.Seed.Profiles, cfg.Seed.Profiles)
	logger.SeedLog("Profile", len(profiles), err)
	if err != nil {
		logger.Fatal("seeding aborted", "model", "Profile")
	}

	// Загрузки распределяются полиморфно между агентствами и профилями
	uploadFactory := faker.NewFactory[models.Upload](db).Persist(true)
	uploads, err := uploadFactory.FakeMultiple(ctx, cfg.Seed.Uploads, cfg.Seed.Uploads)
	logger.SeedLog("Upload", len(uploads), err)
	if err != nil {
		logger.Fatal("seeding aborted", "model", "Upload")
	}

	logger.Info("seeding finished",
		"users", len(users),
		"agencies", len(agencies),
		"tags", len(tags),
		"profiles", len(profiles),
		"uploads", len(uploads),
	)
}
