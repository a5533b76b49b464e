package create_booking

import (
	"regexp"
	"strings"

	"github.com/goutam1234567890/nirogGyan-Assignment/internal/domain"
)

// nonSpace один непробельный символ. Пробельными считаются ASCII пробелы,
// \v, разделители Unicode (Zs), U+2028, U+2029 и U+FEFF; в RE2 \S их не исключает.
const nonSpace = `[^\t\n\x{0B}\f\r \p{Zs}\x{2028}\x{2029}\x{FEFF}]`

// Минимальная структурная проверка: что-то@что-то.что-то, без привязки к началу и концу
var emailPattern = regexp.MustCompile(nonSpace + `+@` + nonSpace + `+\.` + nonSpace + `+`)

// ValidateForm проверяет все поля формы независимо друг от друга.
// В результат попадают только поля с ошибками.
// Наличие даты и времени в расписании врача не проверяется.
func ValidateForm(form domain.AppointmentForm) domain.FormErrors {
	errs := domain.FormErrors{}

	if strings.TrimSpace(form.PatientName) == "" {
		errs[domain.FieldPatientName] = domain.MsgPatientNameRequired
	}

	// Пустота проверяется после trim, формат - по исходному значению
	if strings.TrimSpace(form.Email) == "" {
		errs[domain.FieldEmail] = domain.MsgEmailRequired
	} else if !emailPattern.MatchString(form.Email) {
		errs[domain.FieldEmail] = domain.MsgEmailInvalid
	}

	if form.Date == "" {
		errs[domain.FieldDate] = domain.MsgDateRequired
	}

	if form.Time == "" {
		errs[domain.FieldTime] = domain.MsgTimeRequired
	}

	return errs
}
