package model

import (
	"time"

	"gorm.io/datatypes"
)

const (
	StatusDipinjam     = "dipinjam"
	StatusDikembalikan = "dikembalikan"
)

// PeminjamanModel adalah satu transaksi peminjaman. user_id adalah akun yang membuat
// peminjaman (bisa operator atas nama mahasiswa), nim adalah peminjamnya.
type PeminjamanModel struct {
	ID         uint64          `gorm:"column:id;primaryKey" json:"id"`
	NIM        string          `gorm:"column:nim;type:varchar(32);not null;index" json:"nim"`
	UserID     uint64          `gorm:"column:user_id;not null;index" json:"user_id"`
	KodePinjam string          `gorm:"column:kode_pinjam;type:varchar(64);not null" json:"kode_pinjam"`
	TglPinjam  datatypes.Date  `gorm:"column:tgl_pinjam;not null" json:"tgl_pinjam"`
	TglKembali *datatypes.Date `gorm:"column:tgl_kembali" json:"tgl_kembali"`
	Status     string          `gorm:"column:status;type:varchar(20);not null;index" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (PeminjamanModel) TableName() string {
	return "peminjaman"
}
