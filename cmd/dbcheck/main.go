// Command dbcheck connects with the server's configuration, pings the
// database and prints row counts for each table. One-shot operational
// utility.
package main

import (
	"fmt"
	"log"

	"artgallery-api/config"
	"artgallery-api/database"
	"artgallery-api/internal/domain/artworks"
	"artgallery-api/internal/domain/galleries"
	"artgallery-api/internal/domain/users"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Connection failed: ", err)
	}
	defer database.Close(db)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal("Unwrap pool: ", err)
	}
	if err := sqlDB.Ping(); err != nil {
		log.Fatal("Ping failed: ", err)
	}
	fmt.Println("Database connection OK")

	var userCount, galleryCount, artworkCount int64
	db.Model(&users.User{}).Count(&userCount)
	db.Model(&galleries.Gallery{}).Count(&galleryCount)
	db.Model(&artworks.Artwork{}).Count(&artworkCount)

	fmt.Printf("users: %d\n", userCount)
	fmt.Printf("galleries: %d\n", galleryCount)
	fmt.Printf("artworks: %d\n", artworkCount)
}
