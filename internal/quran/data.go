package quran

import "fmt"

// TotalSurahs is the number of surahs in the Quran
const TotalSurahs = 114

// surahNames holds the transliterated surah names, index 0 = surah 1
var surahNames = [TotalSurahs]string{
	"Al-Fatihah", "Al-Baqarah", "Ali 'Imran", "An-Nisa", "Al-Ma'idah",
	"Al-An'am", "Al-A'raf", "Al-Anfal", "At-Tawbah", "Yunus",
	"Hud", "Yusuf", "Ar-Ra'd", "Ibrahim", "Al-Hijr",
	"An-Nahl", "Al-Isra", "Al-Kahf", "Maryam", "Taha",
	"Al-Anbya", "Al-Hajj", "Al-Mu'minun", "An-Nur", "Al-Furqan",
	"Ash-Shu'ara", "An-Naml", "Al-Qasas", "Al-'Ankabut", "Ar-Rum",
	"Luqman", "As-Sajdah", "Al-Ahzab", "Saba", "Fatir",
	"Ya-Sin", "As-Saffat", "Sad", "Az-Zumar", "Ghafir",
	"Fussilat", "Ash-Shuraa", "Az-Zukhruf", "Ad-Dukhan", "Al-Jathiyah",
	"Al-Ahqaf", "Muhammad", "Al-Fath", "Al-Hujurat", "Qaf",
	"Adh-Dhariyat", "At-Tur", "An-Najm", "Al-Qamar", "Ar-Rahman",
	"Al-Waqi'ah", "Al-Hadid", "Al-Mujadila", "Al-Hashr", "Al-Mumtahanah",
	"As-Saf", "Al-Jumu'ah", "Al-Munafiqun", "At-Taghabun", "At-Talaq",
	"At-Tahrim", "Al-Mulk", "Al-Qalam", "Al-Haqqah", "Al-Ma'arij",
	"Nuh", "Al-Jinn", "Al-Muzzammil", "Al-Muddaththir", "Al-Qiyamah",
	"Al-Insan", "Al-Mursalat", "An-Naba", "An-Nazi'at", "'Abasa",
	"At-Takwir", "Al-Infitar", "Al-Mutaffifin", "Al-Inshiqaq", "Al-Buruj",
	"At-Tariq", "Al-A'la", "Al-Ghashiyah", "Al-Fajr", "Al-Balad",
	"Ash-Shams", "Al-Layl", "Ad-Duhaa", "Ash-Sharh", "At-Tin",
	"Al-'Alaq", "Al-Qadr", "Al-Bayyinah", "Az-Zalzalah", "Al-'Adiyat",
	"Al-Qari'ah", "At-Takathur", "Al-'Asr", "Al-Humazah", "Al-Fil",
	"Quraysh", "Al-Ma'un", "Al-Kawthar", "Al-Kafirun", "An-Nasr",
	"Al-Masad", "Al-Ikhlas", "Al-Falaq", "An-Nas",
}

// ayahCounts holds the number of ayahs per surah, index 0 = surah 1
var ayahCounts = [TotalSurahs]int{
	7, 286, 200, 176, 120, 165, 206, 75, 129, 109,
	123, 111, 43, 52, 99, 128, 111, 110, 98, 135,
	112, 78, 118, 64, 77, 227, 93, 88, 69, 60,
	34, 30, 73, 54, 45, 83, 182, 88, 75, 85,
	54, 53, 89, 59, 37, 35, 38, 29, 18, 45,
	60, 49, 62, 55, 78, 96, 29, 22, 24, 13,
	14, 11, 11, 18, 12, 12, 30, 52, 52, 44,
	28, 28, 20, 56, 40, 31, 50, 40, 46, 42,
	29, 19, 36, 25, 22, 17, 19, 26, 30, 20,
	15, 21, 11, 8, 8, 19, 5, 8, 8, 11,
	11, 8, 3, 9, 5, 4, 7, 3, 6, 3,
	5, 4, 5, 6,
}

// juzSegments maps a surah number to its juz-bounded ayah ranges, for every
// surah that a juz boundary cuts through. Surahs absent from this table lie
// entirely within one juz. Ranges are inclusive, listed in ascending order,
// and together cover the surah exactly.
var juzSegments = map[int][][2]int{
	2:  {{1, 141}, {142, 252}, {253, 286}},
	3:  {{1, 92}, {93, 200}},
	4:  {{1, 23}, {24, 147}, {148, 176}},
	5:  {{1, 81}, {82, 120}},
	6:  {{1, 110}, {111, 165}},
	7:  {{1, 87}, {88, 206}},
	8:  {{1, 40}, {41, 75}},
	9:  {{1, 92}, {93, 129}},
	11: {{1, 5}, {6, 123}},
	12: {{1, 52}, {53, 111}},
	18: {{1, 74}, {75, 110}},
	25: {{1, 20}, {21, 77}},
	27: {{1, 55}, {56, 93}},
	29: {{1, 45}, {46, 69}},
	33: {{1, 30}, {31, 73}},
	36: {{1, 27}, {28, 83}},
	39: {{1, 31}, {32, 75}},
	41: {{1, 46}, {47, 54}},
	51: {{1, 30}, {31, 60}},
}

// SurahName returns the transliterated name for a surah number, or a
// placeholder for numbers outside 1-114.
func SurahName(number int) string {
	if number < 1 || number > TotalSurahs {
		return fmt.Sprintf("Surah %d", number)
	}
	return surahNames[number-1]
}

// AyahCount returns the number of ayahs in the surah and whether the surah
// number is known.
func AyahCount(number int) (int, bool) {
	if number < 1 || number > TotalSurahs {
		return 0, false
	}
	return ayahCounts[number-1], true
}

// BoundarySegments returns the juz-bounded ayah ranges for a surah, or nil
// if no juz boundary cuts through it.
func BoundarySegments(number int) [][2]int {
	return juzSegments[number]
}

// DefaultPassageSurahs is the fixed set used when a learner has no memorized
// list yet: Al-Fatihah plus the three short closing surahs every beginner
// starts with.
func DefaultPassageSurahs() []int {
	return []int{1, 112, 113, 114}
}
