package lang

// String keys.
const (
	PluginName                     = "pluginname"
	ConfigPlugin                   = "configplugin"
	ViewCapability                 = "openveo:view"
	PrivacyMetadata                = "privacy:metadata"
	SearchFormLinkFieldLabel       = "searchformlinkfieldlabel"
	SearchFormSubmitLabel          = "searchformsubmitlabel"
	SettingsSupportedFileTypes     = "settingssupportedfiletypes"
	SettingsSupportedFileTypesHelp = "settingssupportedfiletypes_help"
	ReferenceDetails               = "referencedetails"
	LostSource                     = "lostsource"
	ErrorNotConfigured             = "errorlocalpluginnotconfigured"
	EventGettingVideosFailed       = "eventgettingvideosfailed"
	EventConnectionFailed          = "eventconnectionfailed"
	ErrorNoCompatibleType          = "errornocompatibletype"
)

var english = map[string]string{
	PluginName:                     "OpenVeo Repository",
	ConfigPlugin:                   "OpenVeo Repository settings",
	ViewCapability:                 "Use OpenVeo in file picker",
	PrivacyMetadata:                "The plugin OpenVeo Repository does not store or transmit any personal data.",
	SearchFormLinkFieldLabel:       "OpenVeo video URL:",
	SearchFormSubmitLabel:          "Search",
	SettingsSupportedFileTypes:     "Video types",
	SettingsSupportedFileTypesHelp: "The list of video types the OpenVeo repository can add. Only form fields accepting the video types listed here will be able to add a video with the OpenVeo Repository.",
	ReferenceDetails:               "OpenVeo video: {$a}",
	LostSource:                     `Error. OpenVeo video "{$a}" is missing.`,
	ErrorNotConfigured:             `Local plugin "OpenVeo API" is not configured.`,
	EventGettingVideosFailed:       "Getting videos failed",
	EventConnectionFailed:          "Connection to OpenVeo web service failed",
	ErrorNoCompatibleType:          "No video type accepted by this field is supported by the OpenVeo Repository.",
}

var french = map[string]string{
	PluginName:                     "Dépôt OpenVeo",
	ConfigPlugin:                   "Configuration Dépôt OpenVeo",
	ViewCapability:                 "Utiliser OpenVeo dans le sélecteur de fichiers",
	PrivacyMetadata:                "Le plugin Dépôt OpenVeo n'enregistre ni ne transmet de données personnelles.",
	SearchFormLinkFieldLabel:       "URL de la vidéo OpenVeo :",
	SearchFormSubmitLabel:          "Rechercher",
	SettingsSupportedFileTypes:     "Types de vidéos",
	SettingsSupportedFileTypesHelp: "La liste des types de vidéos que le dépôt OpenVeo peut ajouter. Seuls les champs de formulaire acceptant les types de vidéos listés ici pourront ajouter une vidéo avec le Dépôt OpenVeo.",
	ReferenceDetails:               "Vidéo OpenVeo : {$a}",
	LostSource:                     `Erreur. La vidéo OpenVeo "{$a}" n'existe plus.`,
	ErrorNotConfigured:             `Le plugin local "OpenVeo API" n'est pas configuré.`,
	EventGettingVideosFailed:       "Récupération des vidéos echouée",
	EventConnectionFailed:          "Connexion au web service OpenVeo échouée",
	ErrorNoCompatibleType:          "Aucun type de vidéo accepté par ce champ n'est supporté par le Dépôt OpenVeo.",
}
