package webui

import "golang.org/x/text/language"

// translations by message key. Keys missing for a language fall back to English
var translations = map[language.Tag]map[string]string{
	language.English: {
		"tab.home":                     "Home",
		"tab.missing-titles":           "Missing Titles",
		"tab.missing-dlcs":             "Missing DLCs",
		"tab.missing-updates":          "Missing Updates",
		"tab.missing-old-updates":      "Missing Old Updates",
		"home.title":                   "Missing Content Overview",
		"home.description":             "Content known to the catalog that is missing from",
		"home.stats.totalItems":        "Total Items",
		"home.viewAll":                 "View All Content",
		"home.about.title":             "About",
		"home.about.description":       "This tracker lists titles, DLCs and updates that have been released but are not yet archived. The lists are refreshed from the published data files.",
		"home.sections.games":          "Games",
		"home.sections.updates":        "Updates",
		"home.sections.dlcs":           "DLCs",
		"home.sections.latestReleases": "Latest Releases",
		"home.sections.comingSoon":     "Coming Soon",
		"table.search":                 "Search...",
		"table.filter":                 "Filter",
		"table.allYears":               "All years",
		"table.allMonths":              "All months",
		"table.perPage":                "Per page",
		"table.all":                    "All",
		"table.first":                  "First",
		"table.previous":               "Previous",
		"table.next":                   "Next",
		"table.last":                   "Last",
		"table.pageOf":                 "Page %d of %d",
		"table.results":                "%d results",
		"table.noResults":              "No results",
		"table.info":                   "Info",
		"column.icon":                  "Icon",
		"column.id":                    "ID",
		"column.name":                  "Name",
		"column.base_game":             "Base Game",
		"column.version":               "Version",
		"column.release_date":          "Release Date",
		"column.size":                  "Size",
		"error.title":                  "Couldn't load the data",
		"error.retry":                  "Retry",
		"releaseTimer.noDate":          "No date",
		"releaseTimer.invalidDate":     "Invalid date",
		"info.loading":                 "Loading...",
		"info.failed":                  "Failed to load game information. Please try again later.",
	},
	language.French: {
		"tab.home":                     "Accueil",
		"tab.missing-titles":           "Jeux manquants",
		"tab.missing-dlcs":             "DLC manquants",
		"tab.missing-updates":          "Mises à jour manquantes",
		"tab.missing-old-updates":      "Anciennes mises à jour manquantes",
		"home.title":                   "Aperçu du contenu manquant",
		"home.description":             "Contenu connu du catalogue mais absent de",
		"home.stats.totalItems":        "Total",
		"home.viewAll":                 "Voir tout le contenu",
		"home.about.title":             "À propos",
		"home.about.description":       "Ce suivi liste les jeux, DLC et mises à jour publiés mais pas encore archivés. Les listes sont rafraîchies depuis les fichiers de données publiés.",
		"home.sections.games":          "Jeux",
		"home.sections.updates":        "Mises à jour",
		"home.sections.dlcs":           "DLC",
		"home.sections.latestReleases": "Dernières sorties",
		"home.sections.comingSoon":     "Bientôt disponible",
		"table.search":                 "Rechercher...",
		"table.filter":                 "Filtrer",
		"table.allYears":               "Toutes les années",
		"table.allMonths":              "Tous les mois",
		"table.perPage":                "Par page",
		"table.all":                    "Tout",
		"table.first":                  "Première",
		"table.previous":               "Précédente",
		"table.next":                   "Suivante",
		"table.last":                   "Dernière",
		"table.pageOf":                 "Page %d sur %d",
		"table.results":                "%d résultats",
		"table.noResults":              "Aucun résultat",
		"column.name":                  "Nom",
		"column.base_game":             "Jeu de base",
		"column.release_date":          "Date de sortie",
		"column.size":                  "Taille",
		"column.icon":                  "Icône",
		"error.title":                  "Impossible de charger les données",
		"error.retry":                  "Réessayer",
		"releaseTimer.noDate":          "Pas de date",
		"releaseTimer.invalidDate":     "Date invalide",
		"info.loading":                 "Chargement...",
	},
	language.Spanish: {
		"tab.home":                     "Inicio",
		"tab.missing-titles":           "Juegos faltantes",
		"tab.missing-dlcs":             "DLC faltantes",
		"tab.missing-updates":          "Actualizaciones faltantes",
		"tab.missing-old-updates":      "Actualizaciones antiguas faltantes",
		"home.title":                   "Resumen del contenido faltante",
		"home.stats.totalItems":        "Total",
		"home.viewAll":                 "Ver todo el contenido",
		"home.about.title":             "Acerca de",
		"home.sections.games":          "Juegos",
		"home.sections.updates":        "Actualizaciones",
		"home.sections.latestReleases": "Últimos lanzamientos",
		"home.sections.comingSoon":     "Próximamente",
		"table.search":                 "Buscar...",
		"table.filter":                 "Filtrar",
		"table.allYears":               "Todos los años",
		"table.allMonths":              "Todos los meses",
		"table.perPage":                "Por página",
		"table.all":                    "Todo",
		"table.first":                  "Primera",
		"table.previous":               "Anterior",
		"table.next":                   "Siguiente",
		"table.last":                   "Última",
		"table.pageOf":                 "Página %d de %d",
		"table.results":                "%d resultados",
		"table.noResults":              "Sin resultados",
		"column.name":                  "Nombre",
		"column.base_game":             "Juego base",
		"column.version":               "Versión",
		"column.release_date":          "Fecha de lanzamiento",
		"column.size":                  "Tamaño",
		"column.icon":                  "Icono",
		"error.title":                  "No se pudieron cargar los datos",
		"error.retry":                  "Reintentar",
		"releaseTimer.noDate":          "Sin fecha",
		"releaseTimer.invalidDate":     "Fecha no válida",
	},
	language.German: {
		"tab.home":                     "Start",
		"tab.missing-titles":           "Fehlende Spiele",
		"tab.missing-dlcs":             "Fehlende DLCs",
		"tab.missing-updates":          "Fehlende Updates",
		"tab.missing-old-updates":      "Fehlende alte Updates",
		"home.title":                   "Übersicht fehlender Inhalte",
		"home.stats.totalItems":        "Gesamt",
		"home.viewAll":                 "Alle Inhalte anzeigen",
		"home.about.title":             "Über",
		"home.sections.games":          "Spiele",
		"home.sections.latestReleases": "Neueste Veröffentlichungen",
		"home.sections.comingSoon":     "Demnächst",
		"table.search":                 "Suchen...",
		"table.filter":                 "Filtern",
		"table.allYears":               "Alle Jahre",
		"table.allMonths":              "Alle Monate",
		"table.perPage":                "Pro Seite",
		"table.all":                    "Alle",
		"table.first":                  "Erste",
		"table.previous":               "Zurück",
		"table.next":                   "Weiter",
		"table.last":                   "Letzte",
		"table.pageOf":                 "Seite %d von %d",
		"table.results":                "%d Ergebnisse",
		"table.noResults":              "Keine Ergebnisse",
		"column.base_game":             "Basisspiel",
		"column.release_date":          "Erscheinungsdatum",
		"column.size":                  "Größe",
		"error.title":                  "Daten konnten nicht geladen werden",
		"error.retry":                  "Erneut versuchen",
		"releaseTimer.noDate":          "Kein Datum",
		"releaseTimer.invalidDate":     "Ungültiges Datum",
	},
	language.Japanese: {
		"tab.home":                     "ホーム",
		"tab.missing-titles":           "不足しているタイトル",
		"tab.missing-dlcs":             "不足しているDLC",
		"tab.missing-updates":          "不足しているアップデート",
		"tab.missing-old-updates":      "不足している旧アップデート",
		"home.title":                   "不足コンテンツの概要",
		"home.stats.totalItems":        "合計",
		"home.viewAll":                 "すべて表示",
		"home.about.title":             "概要",
		"home.sections.games":          "ゲーム",
		"home.sections.updates":        "アップデート",
		"home.sections.latestReleases": "最新リリース",
		"home.sections.comingSoon":     "近日公開",
		"table.search":                 "検索...",
		"table.perPage":                "表示件数",
		"table.all":                    "すべて",
		"table.first":                  "最初",
		"table.previous":               "前へ",
		"table.next":                   "次へ",
		"table.last":                   "最後",
		"table.pageOf":                 "%d / %d ページ",
		"table.results":                "%d 件",
		"table.noResults":              "結果がありません",
		"column.name":                  "名前",
		"column.base_game":             "ベースゲーム",
		"column.version":               "バージョン",
		"column.release_date":          "発売日",
		"column.size":                  "サイズ",
		"error.title":                  "データを読み込めませんでした",
		"error.retry":                  "再試行",
	},
	language.Portuguese: {
		"tab.home":                     "Início",
		"tab.missing-titles":           "Jogos em falta",
		"tab.missing-dlcs":             "DLCs em falta",
		"tab.missing-updates":          "Atualizações em falta",
		"tab.missing-old-updates":      "Atualizações antigas em falta",
		"home.title":                   "Visão geral do conteúdo em falta",
		"home.stats.totalItems":        "Total",
		"home.viewAll":                 "Ver todo o conteúdo",
		"home.about.title":             "Sobre",
		"home.sections.games":          "Jogos",
		"home.sections.updates":        "Atualizações",
		"home.sections.latestReleases": "Últimos lançamentos",
		"home.sections.comingSoon":     "Em breve",
		"table.search":                 "Pesquisar...",
		"table.perPage":                "Por página",
		"table.all":                    "Tudo",
		"table.first":                  "Primeira",
		"table.previous":               "Anterior",
		"table.next":                   "Próxima",
		"table.last":                   "Última",
		"table.pageOf":                 "Página %d de %d",
		"table.results":                "%d resultados",
		"table.noResults":              "Sem resultados",
		"column.name":                  "Nome",
		"column.base_game":             "Jogo base",
		"column.release_date":          "Data de lançamento",
		"column.size":                  "Tamanho",
		"error.retry":                  "Tentar novamente",
	},
	language.Korean: {
		"tab.home":                     "홈",
		"tab.missing-titles":           "누락된 타이틀",
		"tab.missing-dlcs":             "누락된 DLC",
		"tab.missing-updates":          "누락된 업데이트",
		"tab.missing-old-updates":      "누락된 이전 업데이트",
		"home.title":                   "누락된 콘텐츠 개요",
		"home.stats.totalItems":        "전체",
		"home.viewAll":                 "모든 콘텐츠 보기",
		"home.sections.games":          "게임",
		"home.sections.updates":        "업데이트",
		"home.sections.latestReleases": "최신 출시",
		"home.sections.comingSoon":     "출시 예정",
		"table.search":                 "검색...",
		"table.first":                  "처음",
		"table.previous":               "이전",
		"table.next":                   "다음",
		"table.last":                   "마지막",
		"table.results":                "%d개 결과",
		"table.noResults":              "결과 없음",
		"column.name":                  "이름",
		"column.release_date":          "출시일",
		"column.size":                  "크기",
		"error.retry":                  "다시 시도",
	},
	language.Russian: {
		"tab.home":                     "Главная",
		"tab.missing-titles":           "Недостающие игры",
		"tab.missing-dlcs":             "Недостающие DLC",
		"tab.missing-updates":          "Недостающие обновления",
		"tab.missing-old-updates":      "Недостающие старые обновления",
		"home.title":                   "Обзор недостающего контента",
		"home.stats.totalItems":        "Всего",
		"home.viewAll":                 "Показать всё",
		"home.about.title":             "О проекте",
		"home.sections.games":          "Игры",
		"home.sections.updates":        "Обновления",
		"home.sections.latestReleases": "Последние релизы",
		"home.sections.comingSoon":     "Скоро",
		"table.search":                 "Поиск...",
		"table.perPage":                "На странице",
		"table.all":                    "Все",
		"table.first":                  "Первая",
		"table.previous":               "Назад",
		"table.next":                   "Вперёд",
		"table.last":                   "Последняя",
		"table.pageOf":                 "Страница %d из %d",
		"table.results":                "Результатов: %d",
		"table.noResults":              "Нет результатов",
		"column.name":                  "Название",
		"column.version":               "Версия",
		"column.release_date":          "Дата выхода",
		"column.size":                  "Размер",
		"error.retry":                  "Повторить",
	},
}
