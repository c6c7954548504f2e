package importer

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Strategy описывает один способ извлечения новостных блоков из HTML.
// Селекторы — конфигурация, а не код: когда вёрстка источника меняется,
// достаточно поправить configs/scraper.yaml. Пустой селектор поля означает
// «брать значение из самого элемента item» (текст ссылки, href и т.д.).
type Strategy struct {
	Name        string `yaml:"name"`
	Item        string `yaml:"item"`
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Time        string `yaml:"time"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

type strategiesFile struct {
	Strategies []Strategy `yaml:"strategies"`
}

// DefaultStrategies — стратегии под текущую вёрстку globalmsk.ru.
// Первая разбирает структурированные блоки новостной ленты, вторая —
// запасной вариант: любые ссылки на страницы новостей.
func DefaultStrategies() []Strategy {
	return []Strategy{
		{
			Name:     "news_roll",
			Item:     "a.news_roll_item",
			Title:    "div.nr_title",
			Image:    "img",
			Time:     "div.nr_info_block_time",
			Category: "a.nr_info_block_rub",
		},
		{
			Name: "generic_links",
			Item: `a[href*="/news/"]`,
		},
	}
}

// LoadStrategies читает стратегии из YAML-файла.
// Отсутствующий файл — не ошибка: используются встроенные стратегии.
func LoadStrategies(path string) ([]Strategy, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultStrategies(), nil
		}
		return nil, fmt.Errorf("failed to read scraper config: %w", err)
	}

	var f strategiesFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse scraper config: %w", err)
	}
	if len(f.Strategies) == 0 {
		return DefaultStrategies(), nil
	}

	for _, s := range f.Strategies {
		if s.Item == "" {
			return nil, fmt.Errorf("strategy %q has empty item selector", s.Name)
		}
	}
	return f.Strategies, nil
}
