package vendors

func init() {
	Register(Rules{
		Name:       "Lenovo",
		SourceURL:  "https://support.lenovo.com/us/en/solutions/ht514580-uefi-secure-boot-certificate-update-lenovo-pcs",
		UseBrowser: true,
		// The plain-HTTP fallback often lands on a bot-detection
		// interstitial; real content always names the certificate topic.
		ContentMarker: "Secure Boot",
		MinRows:       3,
		AnyKeywords: []string{
			"ThinkPad",
			"ThinkCentre",
			"ThinkStation",
			"IdeaPad",
			"IdeaCentre",
			"Legion",
			"Yoga",
			"Product Name",
		},
		Model: FieldRule{
			Aliases:  []string{"Product Name", "Product name", "Model"},
			Fallback: "Column1",
		},
		Version: FieldRule{
			Aliases: []string{
				"Minimum BIOS Version with 2023 Certificate",
				"Minimum BIOS Version",
				"BIOS Version",
			},
			Fallback: "Column2",
		},
		VersionSentinels: []string{"TBD"},
	})
}
