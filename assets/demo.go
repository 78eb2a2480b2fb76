package assets

// DemoSprite is a 16x16 orange ball used by the demo scene.
const DemoSprite = "data:image/png;base64," +
	"iVBORw0KGgoAAAANSUhEUgAAABAAAAAQCAYAAAAf8/9hAAAARElEQVR4nGNgoAU4ESXyHxumSDNRhiAr" +
	"/H9CAwUTNASXRlwGEW0zUS4hVjNOVwwjA8gORIqjkSoJCZshVM8PRGkmFQAAB7WSLPP6qHAAAAAASUVORK5CYII="
