package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"peminjaman_backend/internals/features/peminjaman/history/dto"
)

const (
	cachePrefix = "peminjaman:history"

	// umur minimum key generasi; selalu jauh di atas ttl entri supaya reset
	// generasi tidak pernah menghidupkan kembali entri lama.
	minGenTTL = 24 * time.Hour
)

// HistoryCache menyimpan hasil riwayat per NIM. Semua method aman dipanggil pada nil
// receiver (cache mati).
//
// Setiap key entri memuat nomor generasi NIM. Invalidasi cukup menaikkan generasi:
// pembaca yang mengambil generasi lama sebelum delete hanya bisa menulis ke key
// generasi lama, yang tidak pernah dibaca lagi.
type HistoryCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	genTTL time.Duration
}

func NewHistoryCache(rdb *redis.Client, ttl time.Duration) *HistoryCache {
	if rdb == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &HistoryCache{rdb: rdb, ttl: ttl, genTTL: max(minGenTTL, 10*ttl)}
}

func genKey(nim string) string {
	return fmt.Sprintf("%s:nim:%s:gen", cachePrefix, nim)
}

func studentKey(nim string, gen int64, userID *uint64) string {
	if userID == nil {
		return fmt.Sprintf("%s:nim:%s:g%d:all", cachePrefix, nim, gen)
	}
	return fmt.Sprintf("%s:nim:%s:g%d:user:%d", cachePrefix, nim, gen, *userID)
}

// Generation mengembalikan generasi cache NIM saat ini. ok=false berarti cache
// tidak boleh dipakai untuk request ini (cache mati atau Redis error).
func (c *HistoryCache) Generation(ctx context.Context, nim string) (int64, bool) {
	if c == nil {
		return 0, false
	}
	gen, err := c.rdb.Get(ctx, genKey(nim)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, true
		}
		log.Printf("[WARN] Error reading cache generation for NIM %s: %v", nim, err)
		return 0, false
	}
	return gen, true
}

func (c *HistoryCache) GetStudent(ctx context.Context, nim string, gen int64, userID *uint64) ([]dto.HistoryItem, bool) {
	if c == nil {
		return nil, false
	}
	data, err := c.rdb.Get(ctx, studentKey(nim, gen, userID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("[WARN] Error getting cache: %v", err)
		}
		return nil, false
	}

	var items []dto.HistoryItem
	if err := sonic.Unmarshal(data, &items); err != nil {
		log.Printf("[WARN] Error unpacking cache data: %v", err)
		return nil, false
	}
	return items, true
}

// SetStudent menulis hasil baca yang diambil pada generasi gen.
func (c *HistoryCache) SetStudent(ctx context.Context, nim string, gen int64, userID *uint64, items []dto.HistoryItem) {
	if c == nil {
		return
	}
	data, err := sonic.Marshal(items)
	if err != nil {
		log.Printf("[WARN] Error packing cache data: %v", err)
		return
	}
	if err := c.rdb.Set(ctx, studentKey(nim, gen, userID), data, c.ttl).Err(); err != nil {
		log.Printf("[WARN] Error setting cache: %v", err)
	}
}

// InvalidateStudent menaikkan generasi NIM sehingga semua entri yang sudah ada
// (dan yang sedang ditulis oleh pembaca lama) tidak terlihat lagi.
func (c *HistoryCache) InvalidateStudent(ctx context.Context, nim string) error {
	if c == nil {
		return nil
	}
	key := genKey(nim)
	_, err := c.rdb.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Incr(ctx, key)
		p.Expire(ctx, key, c.genTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("invalidate cache for nim %s: %w", nim, err)
	}
	return nil
}
