package symptom

import (
	"github.com/lunara-app/lunara-backend/internal/adapter/postgres/symptomlog"
	"github.com/lunara-app/lunara-backend/internal/domain"
)

// symptomFilter converts a ListInput into the repository filter,
// normalizing the date bounds to midnight UTC.
func symptomFilter(input ListInput) symptomlog.Filter {
	f := symptomlog.Filter{
		SymptomID: input.SymptomID,
		Limit:     input.Limit,
		Offset:    input.Offset,
	}
	if input.From != nil {
		from := domain.NormalizeDate(*input.From)
		f.From = &from
	}
	if input.To != nil {
		to := domain.NormalizeDate(*input.To)
		f.To = &to
	}
	return f
}
