package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"
	"main-gestdoc/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := SeedMasterData(s.db); err != nil {
		return err
	}
	if err := s.seedUsers(); err != nil {
		log.Printf("⚠️ User seeder skipped: %v", err)
	}
	if err := s.seedClients(); err != nil {
		log.Printf("⚠️ Client seeder skipped: %v", err)
	}
	if err := s.seedDocuments(); err != nil {
		log.Printf("⚠️ Document seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedUsers seeds the demo user directory.
// Development only; production accounts are created through the admin panel.
func (s *Seeder) seedUsers() error {
	var count int64
	s.db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash("contraseña123")
	if err != nil {
		return err
	}

	groupAdmin := uint(1)
	groupOps := uint(2)

	users := []models.User{
		{Nombre: "Jaime Valtierra", Rut: "12.345.678-9", Correo: "jvaltierra@mainingenieros.cl", Telefono: "+56912345678", ProfileID: 1, GroupID: &groupAdmin, Password: hashed},
		{Nombre: "Ana López", Rut: "18.765.432-1", Correo: "alopez@mainingenieros.cl", Telefono: "+56987654321", ProfileID: 2, GroupID: &groupAdmin, Password: hashed},
		{Nombre: "Carlos Ruiz", Rut: "15.432.765-2", Correo: "cruiz@mainingenieros.cl", Telefono: "+56956781234", ProfileID: 3, GroupID: &groupOps, Password: hashed},
		{Nombre: "María González", Rut: "19.876.543-3", Correo: "mgonzalez@mainingenieros.cl", Telefono: "+56943218765", ProfileID: 2, GroupID: &groupOps, Password: hashed},
		{Nombre: "Pedro Sánchez", Rut: "13.456.789-4", Correo: "psanchez@mainingenieros.cl", Telefono: "+56978901234", ProfileID: 3, GroupID: &groupOps, Password: hashed},
	}

	for i := range users {
		if err := s.db.Create(&users[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d demo users", len(users))
	return nil
}

func (s *Seeder) seedClients() error {
	var count int64
	s.db.Model(&models.Client{}).Count(&count)
	if count > 0 {
		return nil
	}

	clients := []models.Client{
		{ID: uuid.New().String(), Nombre: "Tech Solutions Inc.", Planta: "San Felipe", Rut: "76.123.456-K", Contacto: "John Doe", Correo: "john.doe@techsolutions.com", Telefono: "555-1234", Direccion: "123 Tech Park"},
		{ID: uuid.New().String(), Nombre: "Innovatech Ltd.", Planta: "San Felipe", Rut: "77.234.567-1", Contacto: "Jane Smith", Correo: "jane.smith@innovatech.com", Telefono: "555-5678", Direccion: "456 Innovation Ave"},
		{ID: uuid.New().String(), Nombre: "Global Corp.", Planta: "San Felipe", Rut: "78.345.678-2", Contacto: "Robert Brown", Correo: "robert.brown@globalcorp.com", Telefono: "555-8765", Direccion: "789 Global St"},
	}

	for i := range clients {
		if err := s.db.Create(&clients[i]).Error; err != nil {
			return err
		}
	}

	log.Printf("✅ Seeded %d demo clients", len(clients))
	return nil
}

// seedDocuments seeds a handful of demo documents per variant
func (s *Seeder) seedDocuments() error {
	var count int64
	s.db.Model(&models.Budget{}).Count(&count)
	if count > 0 {
		return nil
	}

	var clients []models.Client
	if err := s.db.Find(&clients).Error; err != nil {
		return err
	}
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return err
	}
	if len(clients) == 0 || len(users) == 0 {
		return fmt.Errorf("clients and users must be seeded first")
	}

	statuses := domain.AllStatuses()
	seeded := 0

	makeBase := func(docType domain.DocumentType, i int) models.DocumentBase {
		client := clients[i%len(clients)]
		user := users[i%len(users)]
		status := statuses[i%len(statuses)]
		due := time.Now().AddDate(0, 0, 5+i*7)
		key := strings.ToLower(string(docType))

		return models.DocumentBase{
			ID:                  uuid.New().String(),
			DocumentNumber:      fmt.Sprintf("%sN-%d", docType[:1], 1000+i),
			DueDate:             &due,
			Status:              status,
			ResponsibleUserID:   user.ID,
			ResponsibleUserName: user.Nombre,
			ClientID:            client.ID,
			ClientName:          client.Nombre,
			TotalAmount:         decimal.NewFromInt(int64(500 + i*750)),
			Notes:               fmt.Sprintf("Nota de ejemplo para %s %d.", key, 1000+i),
		}
	}

	for i := 0; i < 5; i++ {
		doc := models.Budget{DocumentBase: makeBase(domain.TypeBudget, i), ValidityDays: 30}
		if err := s.db.Create(&doc).Error; err != nil {
			return err
		}
		seeded++
	}
	for i := 0; i < 3; i++ {
		doc := models.PurchaseOrder{
			DocumentBase:              makeBase(domain.TypePurchaseOrder, i),
			ClientPurchaseOrderNumber: fmt.Sprintf("CPO-%d", 4000+i),
		}
		if err := s.db.Create(&doc).Error; err != nil {
			return err
		}
		seeded++
	}
	for i := 0; i < 4; i++ {
		doc := models.WorkOrder{
			DocumentBase: makeBase(domain.TypeWorkOrder, i),
			Description:  fmt.Sprintf("Descripción detallada para la orden de trabajo %d.", 1000+i),
		}
		if err := s.db.Create(&doc).Error; err != nil {
			return err
		}
		seeded++
	}
	for i := 0; i < 6; i++ {
		doc := models.Invoice{DocumentBase: makeBase(domain.TypeInvoice, i)}
		if doc.Status == domain.StatusPaid {
			paid := time.Now()
			doc.PaymentDate = &paid
		}
		if err := s.db.Create(&doc).Error; err != nil {
			return err
		}
		seeded++
	}

	log.Printf("✅ Seeded %d demo documents", seeded)
	return nil
}
