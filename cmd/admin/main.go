// Command admin is a small operations CLI for the reclamation store:
// list records, force a statut, or remove a record without going
// through the HTTP surface.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"reclamations/backend/internal/config"
	"reclamations/backend/internal/logger"
	"reclamations/backend/internal/reclamation"
	"reclamations/backend/internal/storage"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	zlog, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.PostgresDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	store := storage.NewService(db, nil, zlog) // no redis needed for the admin CLI
	svc := reclamation.NewService(store, zlog)

	if len(os.Args) < 2 {
		usage()
	}

	switch os.Args[1] {
	case "list":
		recs, err := svc.GetAll()
		if err != nil {
			log.Fatalf("Error listing reclamations: %v", err)
		}
		for _, rec := range recs {
			fmt.Printf("%d\t%s\t%s\torder=%d\t%s\t%s\n",
				rec.ID, rec.Type, rec.Statut, rec.OrderID,
				rec.DateReclamation.Format("2006-01-02 15:04"), rec.EmailClient)
		}
	case "statut":
		if len(os.Args) != 4 {
			fmt.Println("Usage: admin statut <id> <value>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		existing, found, err := svc.GetByID(id)
		if err != nil {
			log.Fatalf("Error loading reclamation: %v", err)
		}
		if !found {
			log.Fatalf("Reclamation %d not found", id)
		}
		existing.Statut = os.Args[3]
		if _, err := svc.Update(id, &existing); err != nil {
			log.Fatalf("Error updating statut: %v", err)
		}
		fmt.Printf("Reclamation %d is now %q.\n", id, os.Args[3])
	case "delete":
		if len(os.Args) != 3 {
			fmt.Println("Usage: admin delete <id>")
			os.Exit(1)
		}
		id := parseID(os.Args[2])
		if err := svc.Delete(id); err != nil {
			log.Fatalf("Error deleting reclamation: %v", err)
		}
		fmt.Printf("Reclamation %d has been deleted.\n", id)
	default:
		usage()
	}
}

func parseID(arg string) int {
	id, err := strconv.Atoi(arg)
	if err != nil {
		fmt.Println("Invalid id. Please provide an integer.")
		os.Exit(1)
	}
	return id
}

func usage() {
	fmt.Println("Usage: admin <list|statut|delete> [args]")
	os.Exit(1)
}
