package components

import "github.com/yohamta/donburi"

type SettingsData struct {
	ShowInspector bool
	ShowPlates    bool
}

var Settings = donburi.NewComponentType[SettingsData]()
