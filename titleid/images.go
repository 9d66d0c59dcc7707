package titleid

import (
	"fmt"
	"strings"
)

// Image lookups are keyed on the base title, as updates and DLC's dont have their own art
// Both are best effort, an ID that cant be resolved gives an empty URL and the page shows no image

func IconURL(serviceURL, id string) string {
	return imageURL(serviceURL, id, "icon/128/128")
}

func BannerURL(serviceURL, id string) string {
	return imageURL(serviceURL, id, "banner/1920/1080")
}

func imageURL(serviceURL, id, suffix string) string {
	base, err := BaseTitleID(id)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(serviceURL, "/"), base, suffix)
}
