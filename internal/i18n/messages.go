/**
 * @description
 * Static translation dictionaries for the shell chrome (navigation labels,
 * page titles, the not-found page). Dictionaries are plain maps keyed by
 * message id; lookups fall back to the default locale so a missing key can
 * never render an empty label.
 */
package i18n

// Messages is the translation dictionary for one locale.
type Messages map[string]string

var dictionaries = map[Locale]Messages{
	LocaleEN: {
		"nav.home":        "Home",
		"nav.pricing":     "Pricing",
		"nav.dashboard":   "Dashboard",
		"nav.signin":      "Sign in",
		"page.home":       "Automation that runs your business",
		"page.pricing":    "Plans and pricing",
		"page.dashboard":  "Your dashboard",
		"page.onboarding": "Let's get you set up",
		"page.trial":      "Start your free trial",
		"page.signin":     "Sign in to Levqor",
		"notfound.title":  "Page not found",
		"notfound.body":   "The page you are looking for does not exist.",
	},
	LocaleES: {
		"nav.home":        "Inicio",
		"nav.pricing":     "Precios",
		"nav.dashboard":   "Panel",
		"nav.signin":      "Iniciar sesión",
		"page.home":       "Automatización que dirige tu negocio",
		"page.pricing":    "Planes y precios",
		"page.dashboard":  "Tu panel",
		"page.onboarding": "Vamos a configurarte",
		"page.trial":      "Comienza tu prueba gratuita",
		"page.signin":     "Inicia sesión en Levqor",
		"notfound.title":  "Página no encontrada",
		"notfound.body":   "La página que buscas no existe.",
	},
	LocaleAR: {
		"nav.home":        "الرئيسية",
		"nav.pricing":     "الأسعار",
		"nav.dashboard":   "لوحة التحكم",
		"nav.signin":      "تسجيل الدخول",
		"page.home":       "أتمتة تدير أعمالك",
		"page.pricing":    "الخطط والأسعار",
		"page.dashboard":  "لوحة تحكمك",
		"page.onboarding": "لنبدأ الإعداد",
		"page.trial":      "ابدأ تجربتك المجانية",
		"page.signin":     "سجّل الدخول إلى Levqor",
		"notfound.title":  "الصفحة غير موجودة",
		"notfound.body":   "الصفحة التي تبحث عنها غير موجودة.",
	},
	LocaleHI: {
		"nav.home":        "होम",
		"nav.pricing":     "मूल्य",
		"nav.dashboard":   "डैशबोर्ड",
		"nav.signin":      "साइन इन",
		"page.home":       "ऑटोमेशन जो आपका व्यवसाय चलाता है",
		"page.pricing":    "प्लान और मूल्य",
		"page.dashboard":  "आपका डैशबोर्ड",
		"page.onboarding": "चलिए आपको सेट करें",
		"page.trial":      "अपना मुफ़्त ट्रायल शुरू करें",
		"page.signin":     "Levqor में साइन इन करें",
		"notfound.title":  "पृष्ठ नहीं मिला",
		"notfound.body":   "जिस पृष्ठ की आपको तलाश है वह मौजूद नहीं है।",
	},
	LocaleZHHans: {
		"nav.home":        "首页",
		"nav.pricing":     "定价",
		"nav.dashboard":   "控制台",
		"nav.signin":      "登录",
		"page.home":       "让自动化运营您的业务",
		"page.pricing":    "套餐与定价",
		"page.dashboard":  "您的控制台",
		"page.onboarding": "开始设置",
		"page.trial":      "开始免费试用",
		"page.signin":     "登录 Levqor",
		"notfound.title":  "页面未找到",
		"notfound.body":   "您访问的页面不存在。",
	},
	LocaleDE: {
		"nav.home":        "Startseite",
		"nav.pricing":     "Preise",
		"nav.dashboard":   "Dashboard",
		"nav.signin":      "Anmelden",
		"page.home":       "Automatisierung, die Ihr Geschäft steuert",
		"page.pricing":    "Tarife und Preise",
		"page.dashboard":  "Ihr Dashboard",
		"page.onboarding": "Lassen Sie uns alles einrichten",
		"page.trial":      "Kostenlose Testphase starten",
		"page.signin":     "Bei Levqor anmelden",
		"notfound.title":  "Seite nicht gefunden",
		"notfound.body":   "Die gesuchte Seite existiert nicht.",
	},
	LocaleFR: {
		"nav.home":        "Accueil",
		"nav.pricing":     "Tarifs",
		"nav.dashboard":   "Tableau de bord",
		"nav.signin":      "Connexion",
		"page.home":       "L'automatisation qui fait tourner votre entreprise",
		"page.pricing":    "Offres et tarifs",
		"page.dashboard":  "Votre tableau de bord",
		"page.onboarding": "Configurons votre compte",
		"page.trial":      "Commencez votre essai gratuit",
		"page.signin":     "Connectez-vous à Levqor",
		"notfound.title":  "Page introuvable",
		"notfound.body":   "La page que vous cherchez n'existe pas.",
	},
	LocaleIT: {
		"nav.home":        "Home",
		"nav.pricing":     "Prezzi",
		"nav.dashboard":   "Dashboard",
		"nav.signin":      "Accedi",
		"page.home":       "L'automazione che gestisce la tua azienda",
		"page.pricing":    "Piani e prezzi",
		"page.dashboard":  "La tua dashboard",
		"page.onboarding": "Configuriamo il tuo account",
		"page.trial":      "Inizia la prova gratuita",
		"page.signin":     "Accedi a Levqor",
		"notfound.title":  "Pagina non trovata",
		"notfound.body":   "La pagina che cerchi non esiste.",
	},
	LocalePT: {
		"nav.home":        "Início",
		"nav.pricing":     "Preços",
		"nav.dashboard":   "Painel",
		"nav.signin":      "Entrar",
		"page.home":       "Automação que gere o seu negócio",
		"page.pricing":    "Planos e preços",
		"page.dashboard":  "O seu painel",
		"page.onboarding": "Vamos configurar a sua conta",
		"page.trial":      "Comece o seu teste gratuito",
		"page.signin":     "Entrar no Levqor",
		"notfound.title":  "Página não encontrada",
		"notfound.body":   "A página que procura não existe.",
	},
}

// T renders the message identified by key for the given locale, falling back
// to the default locale's dictionary, then to the key itself.
func T(locale Locale, key string) string {
	if dict, ok := dictionaries[locale]; ok {
		if msg, ok := dict[key]; ok {
			return msg
		}
	}
	if msg, ok := dictionaries[DefaultLocale][key]; ok {
		return msg
	}
	return key
}
