package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconCalendar = "\U000F00ED" // 󰃭
	IconTask     = " "
	IconNote     = "\U000F039A" // 󰎚
	IconMoney    = "\U000F0D6C" // 󰵬
	IconHealth   = "\U000F0E10" // 󰸐
	IconStocks   = "\U000F0127" // 󰄧
	IconHouse    = "\U000F02DC" // 󰋜
	IconChat     = "\U000F0B79" // 󰭹
	IconGear     = " "
)
