// Package engine menghitung Nilai Rata-rata Unsur (NRR) per pertanyaan dan
// Indeks Kepuasan Masyarakat (IKM) dari akumulasi jawaban survei.
package engine

import "math"

const (
	CategoryNoData     = "Tidak Ada Data"
	CategoryPoor       = "Tidak Baik"
	CategoryFair       = "Kurang Baik"
	CategoryGood       = "Baik"
	CategoryExcellent  = "Sangat Baik"
	IKMScale           = 25.0
	LegacyWeight       = 0.111
	legacyQuestionSize = 9
)

// Batas atas (inklusif) tiap kategori NRR. Celah 2.5996–2.6 dan 3.064–3.0644
// diperlakukan sebagai kelanjutan interval di bawahnya.
const (
	poorUpper = 2.6 // eksklusif
	fairUpper = 3.064
	goodUpper = 3.532
)

// Tally adalah akumulasi jawaban untuk satu pertanyaan.
type Tally struct {
	QuestionID uint
	Acronim    string
	Question   string
	Count      int64 // jumlah jawaban
	Total      int64 // jumlah select_option
}

type QuestionScore struct {
	QuestionID  uint    `json:"question_id"`
	Acronim     string  `json:"acronim"`
	Question    string  `json:"question"`
	Total       int64   `json:"total"`
	Count       int64   `json:"count"`
	HasData     bool    `json:"has_data"`
	NRR         float64 `json:"nrr"`
	Category    string  `json:"category"`
	WeightedNRR float64 `json:"weighted_nrr"`
}

type Summary struct {
	Questions      []QuestionScore `json:"questions"`
	TotalQuestions int             `json:"total_questions"`
	Weight         float64         `json:"weight"`
	WeightedTotal  float64         `json:"weighted_total"`
	IKM            float64         `json:"ikm"`
	Grade          string          `json:"grade"`
	GradeLabel     string          `json:"grade_label"`
}

// Weight: 1/N, konstanta lama 0.111 hanya dipakai saat tepat 9 pertanyaan.
func Weight(totalQuestions int) float64 {
	switch {
	case totalQuestions <= 0:
		return 0
	case totalQuestions == legacyQuestionSize:
		return LegacyWeight
	default:
		return 1 / float64(totalQuestions)
	}
}

// NRR mengembalikan rata-rata dibulatkan 3 desimal; ok=false bila belum ada jawaban.
func NRR(total, count int64) (float64, bool) {
	if count <= 0 {
		return 0, false
	}
	return Round(float64(total)/float64(count), 3), true
}

func Classify(nrr float64) string {
	switch {
	case nrr < poorUpper:
		return CategoryPoor
	case nrr <= fairUpper:
		return CategoryFair
	case nrr <= goodUpper:
		return CategoryGood
	default:
		return CategoryExcellent
	}
}

// Grade memetakan IKM (skala 25–100) ke mutu pelayanan A–D.
func Grade(ikm float64) (string, string) {
	switch {
	case ikm <= 0:
		return "-", CategoryNoData
	case ikm < 65:
		return "D", CategoryPoor
	case ikm <= 76.60:
		return "C", CategoryFair
	case ikm <= 88.30:
		return "B", CategoryGood
	default:
		return "A", CategoryExcellent
	}
}

// Compute menghitung ringkasan; urutan pertanyaan dipertahankan.
func Compute(tallies []Tally) Summary {
	weight := Weight(len(tallies))
	out := Summary{
		Questions:      make([]QuestionScore, 0, len(tallies)),
		TotalQuestions: len(tallies),
		Weight:         weight,
	}

	var weighted float64
	for _, t := range tallies {
		score := QuestionScore{
			QuestionID: t.QuestionID,
			Acronim:    t.Acronim,
			Question:   t.Question,
			Total:      t.Total,
			Count:      t.Count,
			Category:   CategoryNoData,
		}
		if nrr, ok := NRR(t.Total, t.Count); ok {
			score.HasData = true
			score.NRR = nrr
			score.Category = Classify(nrr)
			score.WeightedNRR = Round(nrr*weight, 3)
			weighted += nrr * weight
		}
		out.Questions = append(out.Questions, score)
	}

	out.WeightedTotal = Round(weighted, 3)
	out.IKM = Round(weighted*IKMScale, 2)
	out.Grade, out.GradeLabel = Grade(out.IKM)
	return out
}

func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
