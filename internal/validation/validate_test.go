package validation_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medscan/internal/domain"
	"medscan/internal/validation"
)

func TestParseToken(t *testing.T) {
	tests := []struct {
		raw  string
		want domain.Param
	}{
		{"25", domain.NumberParam(25)},
		{"1.5", domain.NumberParam(1.5)},
		{"1.", domain.NumberParam(1)},
		{".5", domain.NumberParam(0.5)},
		{"0", domain.NumberParam(0)},
		{"-1", domain.CategoryParam("-1")},
		{"1e3", domain.CategoryParam("1e3")},
		{"1.2.3", domain.CategoryParam("1.2.3")},
		{".", domain.CategoryParam(".")},
		{"", domain.CategoryParam("")},
		{"M", domain.CategoryParam("M")},
		{"Normal", domain.CategoryParam("Normal")},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, validation.ParseToken(tt.raw))
		})
	}
}

func heartTokens(t *testing.T, overrides map[int]string) []string {
	t.Helper()
	tokens := strings.Split("25,M,ATA,130,200,0,Normal,150,N,1.0,Up", ",")
	for i, v := range overrides {
		tokens[i] = v
	}
	return tokens
}

func TestValidateHeartValid(t *testing.T) {
	params, err := validation.Validate(domain.ModelHeartAttack, heartTokens(t, nil))
	require.NoError(t, err)
	require.Len(t, params, validation.HeartArity)

	assert.Equal(t, domain.NumberParam(25), params[0])
	assert.Equal(t, domain.CategoryParam("M"), params[1])
	assert.Equal(t, domain.CategoryParam("ATA"), params[2])
	assert.Equal(t, domain.NumberParam(130), params[3])
	assert.Equal(t, domain.NumberParam(1.0), params[9])
	assert.Equal(t, domain.CategoryParam("Up"), params[10])
}

func TestValidateHeartArity(t *testing.T) {
	short := heartTokens(t, nil)[:9]
	_, err := validation.Validate(domain.ModelHeartAttack, short)
	require.Error(t, err)
	assert.Equal(t, "Ошибка: Входной список должен содержать ровно 11 элементов.", err.Error())

	long := append(heartTokens(t, nil), "extra")
	_, err = validation.Validate(domain.ModelHeartAttack, long)
	require.Error(t, err)
	assert.Equal(t, "Ошибка: Входной список должен содержать ровно 11 элементов.", err.Error())
}

func TestValidateHeartFields(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[int]string
		want      string
	}{
		{"age non-numeric", map[int]string{0: "old"}, "Ошибка: Age должен быть неотрицательным числом."},
		{"sex unknown", map[int]string{1: "X"}, "Ошибка: Sex должен быть 'M' (Мужской) или 'F' (Женский)."},
		{"sex numeric", map[int]string{1: "1"}, "Ошибка: Sex должен быть 'M' (Мужской) или 'F' (Женский)."},
		{"chest pain unknown", map[int]string{2: "XYZ"}, "Ошибка: ChestPainType должен быть одним из: TA, ATA, NAP, ASY."},
		{"resting bp zero", map[int]string{3: "0"}, "Ошибка: RestingBP должен быть положительным числом."},
		{"cholesterol negative", map[int]string{4: "-10"}, "Ошибка: Cholesterol должен быть неотрицательным числом."},
		{"fasting bs out of set", map[int]string{5: "2"}, "Ошибка: FastingBS должен быть 0 или 1."},
		{"resting ecg unknown", map[int]string{6: "Weird"}, "Ошибка: RestingECG должен быть одним из: Normal, ST, LVH."},
		{"max hr above range", map[int]string{7: "280"}, "Ошибка: MaxHR должен быть числом в диапазоне от 60 до 202."},
		{"max hr below range", map[int]string{7: "59"}, "Ошибка: MaxHR должен быть числом в диапазоне от 60 до 202."},
		{"exercise angina unknown", map[int]string{8: "Maybe"}, "Ошибка: ExerciseAngina должен быть 'Y' (Да) или 'N' (Нет)."},
		{"oldpeak non-numeric", map[int]string{9: "deep"}, "Ошибка: Oldpeak должен быть числом."},
		{"st slope unknown", map[int]string{10: "Sideways"}, "Ошибка: ST_Slope должен быть одним из: Up, Flat, Down."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := validation.Validate(domain.ModelHeartAttack, heartTokens(t, tt.overrides))
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			var verr *validation.Error
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestValidateHeartFirstErrorWins(t *testing.T) {
	// Age and MaxHR both invalid; only the Age message surfaces.
	_, err := validation.Validate(domain.ModelHeartAttack, heartTokens(t, map[int]string{0: "old", 7: "280"}))
	require.Error(t, err)
	assert.Equal(t, "Ошибка: Age должен быть неотрицательным числом.", err.Error())
}

func TestValidateHeartBoundaries(t *testing.T) {
	for _, hr := range []string{"60", "202"} {
		_, err := validation.Validate(domain.ModelHeartAttack, heartTokens(t, map[int]string{7: hr}))
		assert.NoError(t, err, "MaxHR=%s is inside the inclusive range", hr)
	}

	_, err := validation.Validate(domain.ModelHeartAttack, heartTokens(t, map[int]string{0: "0", 4: "0"}))
	assert.NoError(t, err, "zero Age and Cholesterol are allowed")
}

func TestValidateDiabetes(t *testing.T) {
	params, err := validation.Validate(domain.ModelDiabetes, strings.Split("2,120,70,30,80,33.6,0.6,29", ","))
	require.NoError(t, err)
	require.Len(t, params, 8)
	for _, p := range params {
		assert.Equal(t, domain.ParamNumber, p.Kind)
	}
}

func TestValidateDiabetesNonNumeric(t *testing.T) {
	for _, bad := range []string{
		"2,120,70,30,abc,33.6,0.6,29",
		"-2,120,70,30,80,33.6,0.6,29",
		"2,120,,30,80,33.6,0.6,29",
	} {
		_, err := validation.Validate(domain.ModelDiabetes, strings.Split(bad, ","))
		require.Error(t, err, bad)
		assert.Equal(t, "Все значения должны быть числовые.", err.Error())
	}
}

func TestValidateDiabetesAnyArity(t *testing.T) {
	// No arity constraint beyond all-numeric.
	_, err := validation.Validate(domain.ModelDiabetes, []string{"1", "2", "3"})
	assert.NoError(t, err)
}

func TestValidateUnknownModel(t *testing.T) {
	_, err := validation.Validate(domain.ModelBrainTumor, []string{"1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownModel)
}
