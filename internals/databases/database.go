package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"peminjaman_backend/internals/configs"
	historyModel "peminjaman_backend/internals/features/peminjaman/history/model"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

func ConnectDB() {
	log.Println("[INFO] Koneksi ke PostgreSQL...")

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=peminjaman&options=-c statement_timeout=3000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME"),
		configs.GetEnv("DB_SSLMODE", "require"),
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // aman untuk PgBouncer (transaction pooling)
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("[ERROR] Gagal konek DB: %v", err)
	}
	DB = db
	log.Println("[INFO] DB connected.")
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// AutoMigrate hanya untuk development lokal; tabel peminjaman dimiliki modul peminjaman.
func AutoMigrate() {
	if !configs.DBAutoMigrate {
		return
	}
	if err := DB.AutoMigrate(&historyModel.PeminjamanModel{}); err != nil {
		log.Fatalf("[ERROR] AutoMigrate gagal: %v", err)
	}
	log.Println("[INFO] AutoMigrate peminjaman selesai.")
}

func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database belum terkoneksi")
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// ConnectRedis membiarkan Redis nil kalau REDIS_ADDR kosong atau tidak bisa di-ping.
func ConnectRedis() {
	if configs.RedisAddr == "" {
		return
	}
	client := redis.NewClient(&redis.Options{
		Addr:         configs.RedisAddr,
		Password:     configs.RedisPassword,
		PoolSize:     10,
		MinIdleConns: 2,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis tidak bisa di-ping (%v), cache riwayat dimatikan", err)
		_ = client.Close()
		return
	}
	Redis = client
	log.Println("[INFO] Redis connected.")
}

func Close() {
	if Redis != nil {
		_ = Redis.Close()
	}
	if DB != nil {
		if sqlDB, err := DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
