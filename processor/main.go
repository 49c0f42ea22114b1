package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"warehouse-app/config"
	"warehouse-app/controllers/idgen"
	"warehouse-app/database"
	"warehouse-app/models"
	"warehouse-app/repositories"
	"warehouse-app/utils"
)

// processor imports every material file waiting in IMPORT_DIR into the
// catalog and moves it to PROCESSED_DIR.
func main() {
	config.LoadConfig()

	if err := checkDriver(config.DBDriver); err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := idgen.Init(config.SnowflakeNode); err != nil {
		log.Fatalf("❌ Gagal init Snowflake: %v", err)
	}

	store, err := database.OpenStore()
	if err != nil {
		log.Fatalf("❌ Gagal konek ke database: %v", err)
	}

	fmt.Println("🚀 Processor import material berjalan...")

	total, err := processDir(repositories.NewMaterialRepository(store), config.ImportDir, config.ProcessedDir)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	fmt.Printf("✅ Semua file diproses, %d material ditambahkan\n", total)
}

// checkDriver menolak store in-memory: file dipindah ke processed padahal
// datanya hilang begitu proses selesai.
func checkDriver(driver string) error {
	if driver == "" || driver == database.DriverMemory {
		return fmt.Errorf("DB_DRIVER %q tidak persisten, set DB_DRIVER ke postgres, mysql atau mssql", driver)
	}
	return nil
}

func processDir(repo *repositories.MaterialRepository, unprocessed, processed string) (int, error) {
	files, err := os.ReadDir(unprocessed)
	if err != nil {
		return 0, fmt.Errorf("gagal membaca folder %s: %w", unprocessed, err)
	}

	if err := os.MkdirAll(processed, os.ModePerm); err != nil {
		return 0, fmt.Errorf("gagal membuat folder processed: %w", err)
	}

	total := 0
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Name()))
		if file.IsDir() || (ext != ".csv" && ext != ".xlsx") {
			continue
		}

		filePath := filepath.Join(unprocessed, file.Name())
		fmt.Println("📂 Memproses:", filePath)

		items, err := readMaterialFile(filePath)
		if err != nil {
			log.Println("❌ Gagal membaca file:", err)
			continue
		}
		if len(items) == 0 {
			log.Println("⚠️ File kosong atau format tidak valid, skip:", file.Name())
			continue
		}

		added, err := repo.BulkAdd(items)
		if err != nil {
			return total, fmt.Errorf("gagal menyimpan material dari %s: %w", file.Name(), err)
		}
		total += len(added)

		if err := moveFile(filePath, filepath.Join(processed, file.Name())); err != nil {
			return total, fmt.Errorf("gagal memindahkan file ke folder processed: %w", err)
		}
		fmt.Printf("✅ %s: %d material ditambahkan\n", file.Name(), len(added))
	}
	return total, nil
}

func readMaterialFile(path string) ([]models.MaterialInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return utils.ReadMaterialWorkbook(f)
	}

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return utils.ParseMaterialCSV(string(raw)), nil
}

func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	fmt.Println("⚠️  Rename gagal, coba metode copy & delete...")
	return copyAndDeleteFile(src, dst)
}

func copyAndDeleteFile(src, dst string) error {
	sourceFile, err := os.Open(src)
	if err != nil {
		return err
	}
	defer sourceFile.Close()

	destinationFile, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer destinationFile.Close()

	if _, err = io.Copy(destinationFile, sourceFile); err != nil {
		return err
	}

	sourceFile.Close()
	return os.Remove(src) // Hapus file lama setelah berhasil disalin
}
