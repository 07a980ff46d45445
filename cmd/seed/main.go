package main

import (
	"log"
	"os"

	"oficina/internal/database"
	"oficina/internal/domain"
	"oficina/internal/modules/auth"
	"oficina/internal/pricing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "oficina.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Machine{},
		&domain.Material{},
		&domain.Client{},
		&domain.Project{},
		&domain.TeamMember{},
		&domain.ShopSettings{},
		&domain.Quote{},
		&domain.QuoteItem{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}
	if err := auth.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (children first to avoid foreign key errors).
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM quote_items")
	db.Exec("DELETE FROM quotes")
	db.Exec("DELETE FROM projects")
	db.Exec("DELETE FROM clients")
	db.Exec("DELETE FROM team_members")
	db.Exec("DELETE FROM materials")
	db.Exec("DELETE FROM machines")
	db.Exec("DELETE FROM shop_settings")
	db.Exec("DELETE FROM password_reset_codes")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@oficina.com.br",
		PasswordHash: string(adminHash),
		Role:         domain.RoleAdmin,
		Name:         "Administrador",
		Active:       true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@oficina.com.br / admin123")

	memberHash, _ := bcrypt.GenerateFromPassword([]byte("member123"), bcrypt.DefaultCost)
	member := domain.User{
		Email:        "joao@oficina.com.br",
		PasswordHash: string(memberHash),
		Role:         domain.RoleMember,
		Name:         "João Pereira",
		Active:       true,
	}
	db.Create(&member)

	// ================== SETTINGS ==================
	log.Println("Creating shop settings...")

	cfg := domain.ShopSettings{
		RentPerSquareMeter:    5000,
		ElectricityCostPerKwh: 75,
		OperatorHourlyCost:    2500,
		WorkingHoursPerYear:   2080,
		DefaultProfitMargin:   20,
		DefaultTaxRate:        10,
	}
	db.Create(&cfg)

	// ================== MACHINES ==================
	log.Println("Creating machines...")

	router := domain.Machine{
		Name:                   "Router CNC",
		PurchaseValue:          20000000,
		ResidualValue:          2000000,
		UsefulLifeHours:        10000,
		OccupiedArea:           125000,
		PowerKw:                15500,
		MaintenanceCostPerYear: 500000,
		ConsumablesCostPerYear: 300000,
	}
	db.Create(&router)

	manualCost := int64(18000)
	laser := domain.Machine{
		Name:             "Cortadora a laser",
		PurchaseValue:    9000000,
		ResidualValue:    900000,
		UsefulLifeHours:  8000,
		ManualHourlyCost: &manualCost,
		Notes:            "Custo/hora negociado no contrato de leasing",
	}
	db.Create(&laser)

	// ================== MATERIALS ==================
	log.Println("Creating materials...")

	mdf := domain.Material{
		Name:          "MDF 6mm",
		WidthMm:       2750,
		LengthMm:      1850,
		PurchasePrice: 18900,
		Supplier:      "Madeireira Central",
	}
	db.Create(&mdf)

	acrylic := domain.Material{
		Name:          "Acrílico 3mm",
		WidthMm:       2000,
		LengthMm:      1000,
		PurchasePrice: 35000,
		Supplier:      "AcriSul",
	}
	db.Create(&acrylic)

	// ================== CLIENTS & PROJECTS ==================
	log.Println("Creating clients and projects...")

	client := domain.Client{
		Name:    "Marcos Lima",
		Company: "Lima Móveis",
		Email:   "marcos@limamoveis.com.br",
		Phone:   "+55 11 98765-4321",
	}
	db.Create(&client)

	project := domain.Project{
		ClientID:    client.ID,
		Name:        "Bancada de loja",
		Description: "Bancadas e expositores em MDF para a loja nova",
		Status:      domain.ProjectActive,
	}
	db.Create(&project)

	// ================== TEAM ==================
	log.Println("Creating team members...")

	db.Create(&domain.TeamMember{
		Name:     "Paula Souza",
		Position: "Operadora CNC",
		Email:    "paula@oficina.com.br",
		Active:   true,
	})
	db.Create(&domain.TeamMember{
		Name:     "Ricardo Alves",
		Position: "Acabamento",
		Active:   true,
	})

	// ================== QUOTE ==================
	log.Println("Creating a worked quote...")

	quote := domain.Quote{
		Number:       uuid.NewString(),
		ClientID:     client.ID,
		ProjectID:    &project.ID,
		Status:       domain.QuotePending,
		ProfitMargin: cfg.DefaultProfitMargin,
		TaxRate:      cfg.DefaultTaxRate,
		Notes:        "Orçamento inicial, sujeito a ajuste de prazo",
	}
	db.Create(&quote)

	items := []domain.QuoteItem{
		{
			QuoteID:          quote.ID,
			Position:         1,
			Description:      "Tampo de bancada em MDF",
			Quantity:         2,
			MachineID:        router.ID,
			MaterialID:       &mdf.ID,
			PartWidthMm:      1200,
			PartLengthMm:     600,
			MachineTimeHours: 1.5,
			SetupTimeHours:   0.5,
			ToolingCost:      1500,
		},
		{
			QuoteID:          quote.ID,
			Position:         2,
			Description:      "Placa de acrílico gravada",
			Quantity:         4,
			MachineID:        laser.ID,
			MaterialID:       &acrylic.ID,
			PartWidthMm:      300,
			PartLengthMm:     200,
			MachineTimeHours: 0.25,
			ThirdPartyCost:   800,
		},
	}

	totals, err := pricing.ComputeQuote(
		items,
		map[int64]*domain.Machine{router.ID: &router, laser.ID: &laser},
		map[int64]*domain.Material{mdf.ID: &mdf, acrylic.ID: &acrylic},
		&cfg,
		quote.ProfitMargin,
		quote.TaxRate,
	)
	if err != nil {
		log.Fatal("Quote pricing failed:", err)
	}

	for i := range items {
		items[i].MaterialCost = totals.Items[i].MaterialCost
		items[i].MachineCost = totals.Items[i].MachineCost
		items[i].LaborCost = totals.Items[i].LaborCost
		items[i].ItemSubtotal = totals.Items[i].ItemSubtotal
		db.Create(&items[i])
	}

	quote.Subtotal = totals.Subtotal
	quote.ProfitAmount = totals.ProfitAmount
	quote.TaxAmount = totals.TaxAmount
	quote.FinalPrice = totals.FinalPrice
	db.Save(&quote)

	log.Println("Seed completed.")
}
