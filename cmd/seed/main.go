package main

import (
	"log"
	"os"

	"golexai-be/internal/constant"
	"golexai-be/internal/model"
	"golexai-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Seeding default prompts...")
	seedPrompts(db)

	color.Cyan("Seeding admin account...")
	seedAdmin(db)

	color.Green("Seeding completed.")
}

func seedPrompts(db *gorm.DB) {
	prompts := []model.Prompt{
		{
			Name:        constant.PromptNameDocumentAnalysis,
			Description: "Default legal document analysis template",
			PromptText:  constant.DefaultDocumentAnalysisPromptEN,
			Version:     1,
			IsActive:    true,
			Language:    constant.LanguageEnglish,
		},
		{
			Name:        constant.PromptNameDocumentAnalysis,
			Description: "Domyslny szablon analizy dokumentow prawnych",
			PromptText:  constant.DefaultDocumentAnalysisPromptPL,
			Version:     1,
			IsActive:    true,
			Language:    constant.LanguagePolish,
		},
	}

	for _, prompt := range prompts {
		var count int64
		db.Model(&model.Prompt{}).
			Where("name = ? AND language = ?", prompt.Name, prompt.Language).
			Count(&count)
		if count > 0 {
			color.Yellow("  skip %s (%s): already present", prompt.Name, prompt.Language)
			continue
		}

		if err := db.Create(&prompt).Error; err != nil {
			color.Red("  failed %s (%s): %v", prompt.Name, prompt.Language, err)
			continue
		}
		color.Green("  seeded %s (%s)", prompt.Name, prompt.Language)
	}
}

func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("  skip admin: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		color.Yellow("  skip admin: account already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("  failed to hash admin password: %v", err)
		return
	}
	hashStr := string(hash)

	admin := model.User{
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     "Administrator",
		Role:         "admin",
		Language:     constant.LanguageEnglish,
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("  failed to create admin: %v", err)
		return
	}
	color.Green("  seeded admin %s", email)
}
