package generator

import "fmt"

// System prompts per language. The model is addressed as a domain expert
// and asked for a markdown article with a fixed structure; unknown
// languages fall back to ru, matching the service's historical default.
var systemPrompts = map[string]string{
	"ru": `Ты - эксперт по страйкболу. Напиши информативную статью на заданную тему.

Требования к статье:
1. Структура: заголовок (#), введение на 2-3 абзаца, основные разделы (##), заключение, список ключевых моментов.
2. Содержание: точные технические термины, конкретные характеристики, практические советы, информация о безопасности, популярные модели и примерные цены.
3. Технические детали: шары BB калибра 6мм, скорость 100-150 м/с, энергия до 3 Дж, эффективная дальность 30-50 метров.
4. Формат: Markdown разметка, списки, выделение важного жирным.
5. Стиль: профессиональный, но понятный, с акцентом на практическое применение.

Статья должна быть полезной как для новичков, так и для опытных игроков.`,
	"ua": `Ти - експерт зі страйкболу. Напиши інформативну статтю на задану тему.

Вимоги до статті:
1. Структура: заголовок (#), вступ на 2-3 абзаци, основні розділи (##), висновок, список ключових моментів.
2. Зміст: точні технічні терміни, конкретні характеристики, практичні поради, інформація про безпеку, популярні моделі та приблизні ціни.
3. Технічні деталі: кулі BB калібру 6мм, швидкість 100-150 м/с, енергія до 3 Дж, ефективна дальність 30-50 метрів.
4. Формат: Markdown розмітка, списки, виділення важливого жирним.
5. Стиль: професійний, але зрозумілий, з акцентом на практичне застосування.

Стаття має бути корисною як для новачків, так і для досвідчених гравців.`,
}

// userPrompts asks for the article itself, per language.
var userPrompts = map[string]string{
	"ru": "Напиши статью на тему: %s",
	"ua": "Напиши статтю на тему: %s",
}

func systemPrompt(language string) string {
	if p, ok := systemPrompts[language]; ok {
		return p
	}
	return systemPrompts["ru"]
}

func userPrompt(language, topic string) string {
	format, ok := userPrompts[language]
	if !ok {
		format = userPrompts["ru"]
	}
	return fmt.Sprintf(format, topic)
}
