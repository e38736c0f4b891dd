package catalog

// Default returns the built-in airsoft catalog used when no catalog file
// is configured. Category identifiers are the display names.
func Default() *Catalog {
	return &Catalog{
		languages: []string{"ru", "ua"},
		entries: map[string][]Category{
			"ru": {
				{
					Name:        "Страйкбол",
					Description: "Игровой процесс, правила и подготовка",
					Topics: []string{
						"Выбор тактического жилета для страйкбола",
						"Основы тактики в страйкболе",
						"Уход за страйкбольным оружием",
					},
				},
				{
					Name:        "Тактическое снаряжение",
					Description: "Экипировка и аксессуары",
					Topics: []string{
						"Выбор тактического жилета",
						"Тактические перчатки: критерии выбора",
						"Тактические ботинки для страйкбола",
					},
				},
				{
					Name:        "Оружие",
					Description: "Приводы, обслуживание и апгрейды",
					Topics: []string{
						"Выбор первой страйкбольной винтовки",
						"Модернизация страйкбольного оружия",
						"Сравнение популярных моделей страйкбольных пистолетов",
					},
				},
				{
					Name:        "Тактика и стратегия",
					Description: "Командная игра и приемы",
					Topics: []string{
						"Основы командной тактики в страйкболе",
						"Тактические приемы для новичков",
						"Продвинутые тактические схемы",
					},
				},
			},
			"ua": {
				{
					Name:        "Страйкбол",
					Description: "Ігровий процес, правила та підготовка",
					Topics: []string{
						"Вибір тактичного жилета для страйкболу",
						"Основи тактики в страйкболі",
						"Догляд за страйкбольною зброєю",
					},
				},
				{
					Name:        "Тактичне спорядження",
					Description: "Екіпірування та аксесуари",
					Topics: []string{
						"Вибір тактичного жилета",
						"Тактичні рукавички: критерії вибору",
						"Тактичне взуття для страйкболу",
					},
				},
				{
					Name:        "Зброя",
					Description: "Приводи, обслуговування та апгрейди",
					Topics: []string{
						"Вибір першої страйкбольної гвинтівки",
						"Модернізація страйкбольної зброї",
						"Порівняння популярних моделей страйкбольних пістолетів",
					},
				},
				{
					Name:        "Тактика та стратегія",
					Description: "Командна гра та прийоми",
					Topics: []string{
						"Основи командної тактики в страйкболі",
						"Тактичні прийоми для новачків",
						"Просунуті тактичні схеми",
					},
				},
			},
		},
	}
}
