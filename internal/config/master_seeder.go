package config

import (
	"log"

	"main-gestdoc/internal/adapters/persistence/models"
	"main-gestdoc/internal/core/domain"

	"gorm.io/gorm"
)

// SeedMasterData seeds profiles, groups and the status whitelists
func SeedMasterData(db *gorm.DB) error {
	if err := seedProfiles(db); err != nil {
		return err
	}
	if err := seedGroups(db); err != nil {
		return err
	}
	if err := seedStatusConfigs(db); err != nil {
		return err
	}

	log.Println("✅ Master data seeded successfully")
	return nil
}

func seedProfiles(db *gorm.DB) error {
	profiles := []models.Profile{
		{ID: 1, Nombre: "Administrador", Descripcion: "Acceso total al sistema"},
		{ID: 2, Nombre: "Gerente", Descripcion: "Gestión de proyectos"},
		{ID: 3, Nombre: "Operador", Descripcion: "Operaciones generales"},
	}

	for _, profile := range profiles {
		var count int64
		db.Model(&models.Profile{}).Where("id = ?", profile.ID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&profile).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedGroups(db *gorm.DB) error {
	groups := []models.Group{
		{ID: 1, Nombre: "Administración", Descripcion: "Equipo de administración"},
		{ID: 2, Nombre: "Operaciones", Descripcion: "Equipo de operaciones"},
	}

	for _, group := range groups {
		var count int64
		db.Model(&models.Group{}).Where("id = ?", group.ID).Count(&count)
		if count > 0 {
			continue
		}
		if err := db.Create(&group).Error; err != nil {
			return err
		}
	}
	return nil
}

// seedStatusConfigs stores the full enumeration per document type so the
// admin panel starts from an explicit whitelist
func seedStatusConfigs(db *gorm.DB) error {
	for _, docType := range domain.AllDocumentTypes() {
		var count int64
		db.Model(&models.ManagedStatusConfig{}).Where("document_type = ?", docType).Count(&count)
		if count > 0 {
			continue
		}
		config := models.ManagedStatusConfig{
			DocumentType: docType,
			Statuses:     models.StatusList(domain.AllStatuses()),
		}
		if err := db.Create(&config).Error; err != nil {
			return err
		}
	}
	return nil
}
