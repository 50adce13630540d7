package catalog

import "strings"

// SectorSet is the set of sector codes eligible for monitoring. Emitens
// outside it are never reported, whatever their aliases match.
type SectorSet map[string]struct{}

// NewSectorSet builds a set from sector codes, uppercasing for comparison.
func NewSectorSet(sectors []string) SectorSet {
	s := make(SectorSet, len(sectors))
	for _, sec := range sectors {
		sec = strings.ToUpper(strings.TrimSpace(sec))
		if sec != "" {
			s[sec] = struct{}{}
		}
	}
	return s
}

// Has reports whether the sector is monitored.
func (s SectorSet) Has(sector string) bool {
	_, ok := s[strings.ToUpper(sector)]
	return ok
}

// DefaultActiveSectors is the full monitored watchlist used when the
// config does not narrow it down.
func DefaultActiveSectors() []string {
	return []string{
		"BANK", "BATUBARA", "PANGAN", "ALATKEBAKARAN", "ALATKESEHATAN",
		"ASURANSI", "BAN", "BANGUNAN", "BEER", "BIMBEL", "BUDIDAYA",
		"ELEKTRONIK", "EMAS", "FARMASI", "FILM", "FURNITUR", "GAS", "HOTEL",
		"HUTAN", "INTERNET", "INVESTASI", "JALANTOL", "KABEL", "KANTORAN",
		"KAYU", "KERTAS", "KESEHATAN", "KIMIA", "KOMPUTER", "KONSTRUKSI",
		"LINGKUNGAN", "LISTRIK", "LOGAM", "LOGISTIK", "MAKANAN", "MATERIAL",
		"MESIN", "MESINKONSTRUKSI", "MINUMAN", "MULTISEKTOR", "OBAT",
		"OLAHRGA", "OTOMOTIF", "PAKAIAN", "PELABUHAN", "PEMBIAYAAN",
		"PENERBANGAN", "PENYIARAN", "PERAWATAN", "PERCETAKAN", "PERIKLANAN",
		"PLASTIK", "REALESTATE", "REKREASI", "ROKOK", "RUMAHMAKAN",
		"RUMAHTANGGA", "SEPATU", "SOFTWARE", "STORE", "SUPERMARKET", "SUSU",
		"TAMBANG", "TEKNOLOGI", "TEKSTIL", "TELEKOMUNIKASI", "TEMBAGA",
		"TRANSPORTASI", "TRAVEL",
	}
}
