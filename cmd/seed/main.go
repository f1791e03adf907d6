package main

import (
	"log"
	"os"
	"time"

	"travelbook/internal/database"
	"travelbook/internal/domain"
	"travelbook/internal/modules/upload"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "travelbook.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Country{},
		&domain.City{},
		&domain.Destination{},
		&domain.PackageCategory{},
		&domain.TourCategory{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Tour{},
		&domain.Package{},
		&upload.Upload{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	// Cleanup old data (children before parents)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM packages")
	db.Exec("DELETE FROM tours")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM destinations")
	db.Exec("DELETE FROM cities")
	db.Exec("DELETE FROM countries")
	db.Exec("DELETE FROM package_categories")
	db.Exec("DELETE FROM tour_categories")
	db.Exec("DELETE FROM uploads")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Email:        "admin@travelbook.app",
		PasswordHash: string(adminHash),
		Name:         "Admin",
		Role:         domain.RoleAdmin,
		Active:       true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatal("admin create failed: ", err)
	}
	log.Println("Admin created: admin@travelbook.app / admin123")

	editorHash, _ := bcrypt.GenerateFromPassword([]byte("editor123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "editor@travelbook.app",
		PasswordHash: string(editorHash),
		Name:         "Content Editor",
		Role:         domain.RoleEditor,
		Active:       true,
	})

	// ================== GEO ==================
	log.Println("Creating countries and cities...")

	egypt := domain.Country{Name: "Egypt", NameAr: "مصر", Code: "EG", Currency: "EGP", Active: true}
	jordan := domain.Country{Name: "Jordan", NameAr: "الأردن", Code: "JO", Currency: "JOD", Active: true}
	db.Create(&egypt)
	db.Create(&jordan)

	cairo := domain.City{CountryID: egypt.ID, Name: "Cairo", NameAr: "القاهرة", Active: true}
	luxor := domain.City{CountryID: egypt.ID, Name: "Luxor", NameAr: "الأقصر", Active: true}
	aswan := domain.City{CountryID: egypt.ID, Name: "Aswan", NameAr: "أسوان", Active: true}
	amman := domain.City{CountryID: jordan.ID, Name: "Amman", NameAr: "عمان", Active: true}
	db.Create(&cairo)
	db.Create(&luxor)
	db.Create(&aswan)
	db.Create(&amman)

	db.Create(&domain.Destination{
		CountryID: &egypt.ID,
		CityID:    &luxor.ID,
		Name:      "Upper Egypt",
		NameAr:    "صعيد مصر",
		Featured:  true,
		Active:    true,
	})

	cultural := domain.PackageCategory{Name: "Cultural", NameAr: "ثقافية", Active: true}
	beach := domain.PackageCategory{Name: "Beach", NameAr: "شاطئية", Active: true}
	db.Create(&cultural)
	db.Create(&beach)

	dayTrips := domain.TourCategory{Name: "Day Trips", NameAr: "رحلات يومية", Active: true}
	db.Create(&dayTrips)

	// ================== HOTELS & ROOMS ==================
	log.Println("Creating hotels and rooms...")

	nileView := domain.Hotel{
		Name:   "Nile View Hotel",
		NameAr: "فندق إطلالة النيل",
		CityID: &luxor.ID,
		Stars:  5,
		Active: true,
	}
	_ = nileView.SetAmenities([]string{"pool", "wifi", "spa"})
	db.Create(&nileView)

	oldTown := domain.Hotel{
		Name:   "Old Town Inn",
		NameAr: "نزل البلدة القديمة",
		CityID: &cairo.ID,
		Stars:  3,
		Active: true,
	}
	db.Create(&oldTown)

	// Occupancy columns vary on purpose: legacy rows carry different ones.
	two := 2
	four := 4
	three := 3
	rooms := []domain.Room{
		{HotelID: nileView.ID, Name: "Standard Double", Price: 80, MaxOccupancy: &two, Active: true},
		{HotelID: nileView.ID, Name: "Family Suite", Price: 180, MaxOccupancy: &four, MaxChildren: &two, Active: true},
		{HotelID: oldTown.ID, Name: "Twin Room", Price: 45, MaxAdults: &two, Active: true},
		{HotelID: oldTown.ID, Name: "Triple Room", Price: 60, Capacity: &three, Active: true},
	}
	for i := range rooms {
		db.Create(&rooms[i])
	}

	// ================== TOURS ==================
	log.Println("Creating tours...")

	valleyTour := domain.Tour{
		Name:         "Valley of the Kings",
		NameAr:       "وادي الملوك",
		Price:        55,
		Currency:     "USD",
		Duration:     6,
		DurationUnit: domain.DurationHours,
		Capacity:     20,
		CategoryID:   &dayTrips.ID,
		CityID:       &luxor.ID,
		Featured:     true,
		Active:       true,
	}
	db.Create(&valleyTour)

	// ================== PACKAGES ==================
	log.Println("Creating packages...")

	start := time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7)
	seven := 7

	pkg := domain.Package{
		Title:         "Nile Adventure",
		TitleAr:       "مغامرة النيل",
		Overview:      "Seven days along the Nile from Luxor to Aswan.",
		Price:         899,
		Pricing:       domain.PricingPerBooking,
		Currency:      "USD",
		DurationDays:  &seven,
		CountryID:     &egypt.ID,
		CityID:        &luxor.ID,
		CategoryID:    &cultural.ID,
		TourID:        &valleyTour.ID,
		AdultCount:    2,
		ChildrenCount: 1,
		StartDate:     &start,
		EndDate:       &end,
		MainImage:     "/static/placeholder-package.jpg",
		Featured:      true,
		Active:        true,
	}
	_ = pkg.SetGallery([]string{"/static/placeholder-package.jpg"})
	_ = pkg.SetIncludedFeatures([]string{"Accommodation", "Breakfast", "Nile cruise"})
	_ = pkg.SetExcludedItems([]string{"International flights"})
	_ = pkg.SetItineraryDays([]domain.ItineraryDay{
		{Day: 1, Title: "Arrival in Luxor"},
		{Day: 2, Title: "Valley of the Kings"},
	})
	_ = pkg.SetTravelRoute([]string{"Luxor", "Edfu", "Aswan"})
	_ = pkg.SetHotelIDs([]int64{nileView.ID})
	_ = pkg.SetSelectedRoomIDs([]int64{rooms[1].ID})
	if err := db.Create(&pkg).Error; err != nil {
		log.Fatal("package create failed: ", err)
	}

	log.Println("Seed complete.")
}
