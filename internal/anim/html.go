package anim

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"
)

// keyframes is the shared CSS animation block, emitted once per overlay.
const keyframes = `<style>
@keyframes wt-rain    { from{transform:translateY(-30px) translateX(0)}   to{transform:translateY(105vh) translateX(-15px)} }
@keyframes wt-snow    { 0%{transform:translateY(-20px) translateX(0);opacity:.9} 25%{transform:translateY(25vh) translateX(20px)} 75%{transform:translateY(75vh) translateX(-15px)} 100%{transform:translateY(105vh) translateX(5px);opacity:.3} }
@keyframes wt-star    { 0%,100%{opacity:.15;transform:scale(.8)} 50%{opacity:.9;transform:scale(1.2)} }
@keyframes wt-sun-glow{ 0%,100%{box-shadow:0 0 50px 25px rgba(255,200,50,.3),0 0 100px 50px rgba(255,140,0,.12)} 50%{box-shadow:0 0 70px 40px rgba(255,200,50,.45),0 0 140px 70px rgba(255,140,0,.2)} }
@keyframes wt-ray-cw  { from{transform:rotate(0deg)}   to{transform:rotate(360deg)} }
@keyframes wt-ray-ccw { from{transform:rotate(0deg)}   to{transform:rotate(-360deg)} }
@keyframes wt-cloud   { from{transform:translateX(-220px)} to{transform:translateX(110vw)} }
@keyframes wt-fog     { 0%{transform:translateX(-30%);opacity:0} 15%{opacity:1} 85%{opacity:1} 100%{transform:translateX(110%);opacity:0} }
@keyframes wt-flash   { 0%,100%{opacity:0} 5%{opacity:.55} 6%{opacity:0} 7%{opacity:.3} 8%{opacity:0} }
</style>`

// Overlay renders the full-screen animated overlay for a weather code.
// The wrapper is fixed-position with pointer-events:none so it never
// intercepts input.
func Overlay(code int, isDay bool) template.HTML {
	var b strings.Builder
	b.WriteString(keyframes)
	b.WriteString(`<div style="position:fixed;top:0;left:0;width:100vw;height:100vh;pointer-events:none;z-index:9999;overflow:hidden;">`)
	for _, el := range Generate(code, isDay) {
		writeElement(&b, el)
	}
	b.WriteString("</div>")
	return template.HTML(b.String())
}

func writeElement(b *strings.Builder, el Element) {
	switch el.Kind {
	case KindRaindrop:
		fmt.Fprintf(b,
			`<div style="position:absolute;left:%s%%;top:0;width:1.5px;height:%spx;`+
				`background:linear-gradient(transparent,rgba(100,181,246,%s));`+
				`animation:wt-rain %ss %ss linear infinite;border-radius:1px;"></div>`,
			num(el.Left), num(el.Height), num(el.Opacity), num(el.Duration), num(el.Delay))
	case KindFlash:
		b.WriteString(
			`<div style="position:absolute;inset:0;background:rgba(180,210,255,.18);` +
				`animation:wt-flash 7s .5s ease-in-out infinite;"></div>`)
	case KindSnowflake:
		fmt.Fprintf(b,
			`<div style="position:absolute;left:%s%%;top:-24px;font-size:%srem;`+
				`color:rgba(255,255,255,%s);`+
				`animation:wt-snow %ss %ss linear infinite;`+
				`user-select:none;">%s</div>`,
			num(el.Left), num(el.Size), num(el.Opacity), num(el.Duration), num(el.Delay), el.Glyph)
	case KindSunGlow:
		b.WriteString(
			`<div style="position:absolute;top:30px;right:50px;width:90px;height:90px;` +
				`background:radial-gradient(circle,rgba(255,225,80,.95),rgba(255,160,0,.75));` +
				`border-radius:50%;animation:wt-sun-glow 4s ease-in-out infinite;"></div>`)
	case KindRayRing:
		if el.Clockwise {
			fmt.Fprintf(b,
				`<div style="position:absolute;top:10px;right:30px;width:%spx;height:%spx;`+
					`border:3px dashed rgba(255,210,60,.3);border-radius:50%%;`+
					`animation:wt-ray-cw %ss linear infinite;"></div>`,
				num(el.Width), num(el.Width), num(el.Duration))
		} else {
			fmt.Fprintf(b,
				`<div style="position:absolute;top:-10px;right:10px;width:%spx;height:%spx;`+
					`border:2px dashed rgba(255,200,50,.12);border-radius:50%%;`+
					`animation:wt-ray-ccw %ss linear infinite;"></div>`,
				num(el.Width), num(el.Width), num(el.Duration))
		}
	case KindStar:
		fmt.Fprintf(b,
			`<div style="position:absolute;top:%s%%;left:%s%%;`+
				`width:%srem;height:%srem;background:white;border-radius:50%%;`+
				`animation:wt-star %ss %ss ease-in-out infinite;"></div>`,
			num(el.Top), num(el.Left), num(el.Size), num(el.Size), num(el.Duration), num(el.Delay))
	case KindCloud:
		fmt.Fprintf(b,
			`<div style="position:absolute;top:%s%%;left:-%spx;`+
				`width:%spx;height:%spx;`+
				`background:rgba(200,220,255,%s);border-radius:50%%;filter:blur(12px);`+
				`animation:wt-cloud %ss %ss linear infinite;"></div>`,
			num(el.Top), num(el.Width), num(el.Width), num(el.Height), num(el.Opacity), num(el.Duration), num(el.Delay))
	case KindFogBank:
		fmt.Fprintf(b,
			`<div style="position:absolute;top:%s%%;left:0;width:100%%;height:%spx;`+
				`background:rgba(200,220,240,%s);filter:blur(18px);`+
				`animation:wt-fog %ss %ss linear infinite;"></div>`,
			num(el.Top), num(el.Height), num(el.Opacity), num(el.Duration), num(el.Delay))
	}
}

// num formats a float without trailing zeros (12, 0.5, 1.25).
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
