package domain

import (
	"fmt"
	"time"
)

// Layout des timestamps WooCommerce (date_created, date_modified...)
const WooTimeLayout = "2006-01-02T15:04:05"

// Jours par mois des deux calendriers (année non bissextile)
var (
	gregorianMonthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	jalaliMonthDays    = [12]int{31, 31, 31, 31, 31, 31, 30, 30, 30, 30, 30, 29}
)

// JalaliDate représente une date dans le calendrier persan (chamsi)
type JalaliDate struct {
	year  int
	month int
	day   int
}

// JalaliFromTime convertit un instant grégorien en date persane
// Algorithme civil à cycles de 33 ans, valide sur toute la plage utile ici
func JalaliFromTime(t time.Time) JalaliDate {
	gy, gm, gd := t.Date()

	gy2 := gy - 1600
	gm2 := int(gm) - 1
	gd2 := gd - 1

	gDayNo := 365*gy2 + (gy2+3)/4 - (gy2+99)/100 + (gy2+399)/400
	for i := 0; i < gm2; i++ {
		gDayNo += gregorianMonthDays[i]
	}
	if gm2 > 1 && isGregorianLeap(gy) {
		gDayNo++
	}
	gDayNo += gd2

	jDayNo := gDayNo - 79
	jNp := jDayNo / 12053
	jDayNo %= 12053

	jy := 979 + 33*jNp + 4*(jDayNo/1461)
	jDayNo %= 1461

	if jDayNo >= 366 {
		jy += (jDayNo - 1) / 365
		jDayNo = (jDayNo - 1) % 365
	}

	var i int
	for i = 0; i < 11 && jDayNo >= jalaliMonthDays[i]; i++ {
		jDayNo -= jalaliMonthDays[i]
	}

	return JalaliDate{
		year:  jy,
		month: i + 1,
		day:   jDayNo + 1,
	}
}

// ParseWooTime parse un timestamp WooCommerce (calendrier opérationnel)
func ParseWooTime(value string) (time.Time, error) {
	t, err := time.Parse(WooTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid order timestamp %q: %w", value, err)
	}
	return t, nil
}

// Year retourne l'année persane
func (jd JalaliDate) Year() int {
	return jd.year
}

// Month retourne le mois persan (1-12)
func (jd JalaliDate) Month() int {
	return jd.month
}

// Day retourne le jour du mois persan
func (jd JalaliDate) Day() int {
	return jd.day
}

// FormatCompact formate la date pour les noms de fichiers et sujets (YYYY-MM-DD)
func (jd JalaliDate) FormatCompact() string {
	return fmt.Sprintf("%04d-%02d-%02d", jd.year, jd.month, jd.day)
}

// FormatSlash formate la date pour l'affichage (YYYY/MM/DD)
func (jd JalaliDate) FormatSlash() string {
	return fmt.Sprintf("%04d/%02d/%02d", jd.year, jd.month, jd.day)
}

// FormatSlashTime formate date + heure pour la colonne de date du rapport
// Le tri lexical de ce format équivaut au tri chronologique
func FormatSlashTime(t time.Time) string {
	jd := JalaliFromTime(t)
	return fmt.Sprintf("%s %02d:%02d:%02d", jd.FormatSlash(), t.Hour(), t.Minute(), t.Second())
}

func isGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}
