package generator

import (
	"context"
	"fmt"
	"strings"
)

// MockLLM is a local placeholder implementation that produces a
// deterministic markdown article without calling any model. The output
// is long and varied enough to clear the default quality gate, so the
// whole pipeline works offline (USE_MOCK_LLM=true).
type MockLLM struct{}

func (MockLLM) ModelName() string { return "mock" }

var mockVocabulary = []string{
	"обзор", "модель", "выбор", "игрок", "поле", "опыт", "совет",
	"замена", "уход", "тюнинг", "правило", "база", "шар", "привод",
	"сезон", "группа", "старт", "темп", "ресурс", "разбор",
}

func (MockLLM) Complete(_ context.Context, _ string, user string) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "# Черновик\n\nЗапрос: %s\n\n## Основная часть\n\n", user)

	words := 0
	for words < 340 {
		b.WriteString(mockVocabulary[words%len(mockVocabulary)])
		words++
		if words%8 == 0 {
			b.WriteString(". ")
		} else {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n\n## Вывод\n\nЧерновик создан локально без обращения к модели.\n")
	return b.String(), nil
}
