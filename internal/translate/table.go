package translate

import (
	"github.com/diagfmt/compiler/internal/markup"
	"github.com/diagfmt/compiler/internal/segment"
)

const period = "。"

var (
	variable  = first(`Variable`, "变量")
	parameter = first(`Parameter`, "参数")
	member    = first(`Member`, "成员")
	property  = first(`(?<!alt=")(?:property|Property)`, "属性")
	module    = first(`Module`, "模块")
	typeWord  = first(`Type`, "类型")
	and       = first(`\band\b`, "和")
	question  = first(`\?`, "吗?")

	typeWithSpace = first(` type `, " 类型")
	typeColon     = all(`Type:`, "不能将类型:")

	hasNoExportedMember = first(`has no exported member`, "没有导出的成员")
	cannotFindName      = first(`Cannot find name`, "找不到名称")
	isPossibly          = first(`is possibly`, "可能为")
	didYouMean          = first(`\. Did you mean`, "。你是否指的是")

	doesNotExistOnType = first(`does not exist on type`, "不存在于类型")
	doesNotExistInType = first(`does not exist in type`, "不在类型")

	isMissingProperties   = first(`is missing the following properties from type`, "缺少类型")
	missingPropertiesList = first(`</code>:\s*(?=<ul>)`, "</code> 中的以下属性:")
	isNotAssignableToType = all(`is not assignable to type`, "分配给类型")
	inferredFromUsage     = first(`type, but a better type may be inferred from usage`, "类型，但可以从用法中推断出更好的类型")

	implicitlyHasAn        = first(`implicitly has an`, "隐式具有")
	implicitlyHasType      = first(`implicitly has type`, "隐式具有类型")
	elementImplicitlyHasAn = first(`Element implicitly has an`, "元素隐式具有")

	lastPeriod         = first(`\.(?=[^.]*$)`, period)
	dropLastPeriod     = first(`\.(?=[^.]*$)`, "")
	dropAllPeriods     = all(`\.`, "")
	identifierExpected = first(`Identifier expected`, "应为标识符")

	unexpectedToken = []Rule{
		first(`Unexpected token. Did you mean`, "意外的标记。你是想使用"),
		first(`\bor\b`, "还是"),
	}
)

// lastType replaces the last word "type" outside attribute values.
var lastType = Rule{
	Pattern:     mustCompileSingleline(`(?<![="])\btype\b(?!.*(?<![="])\btype\b)`),
	Replacement: "类型",
}

// htmlStart puts text in front of the first tag.
func htmlStart(text string) Rule {
	return first(`<`, text+"<")
}

// lastPeriodWith replaces the final period with suffix.
func lastPeriodWith(suffix string) Rule {
	return first(`\.(?=[^.]*$)`, suffix)
}

// escapeGenerics escapes type parameter brackets such as Promise<T> left in
// the text by earlier passes.
var escapeGenerics = Rule{Func: segment.EscapeText}

// table is built once and only read afterwards.
var table = map[string][]Rule{
	"TS1002": {first(`Unterminated string literal`, "未终止的字符串字面量"), lastPeriod},
	"TS1003": {identifierExpected, lastPeriod},
	"TS1005": {htmlStart("应为 "), first(`expected`, ""), dropLastPeriod},
	"TS1006": {first(`A file cannot have a reference to itself`, "文件不能引用自身"), lastPeriod},
	"TS1015": {first(`Parameter cannot have question mark and initializer`, "参数不能同时包含问号和初始化表达式"), lastPeriod},
	"TS1016": {first(`A required parameter cannot follow an optional parameter`, "必选参数不能位于可选参数后"), lastPeriod},
	"TS1029": {
		first(`modifier must precede`, "修饰符必须位于"),
		first(`modifier`, "修饰符之前"),
		lastPeriod,
	},
	"TS1035": {first(`Only`, "仅"), first(`can use quoted names`, "可使用带引号的名称"), lastPeriod},
	"TS1046": {
		first(`Top-level declarations in`, ""),
		first(`files must start with either a`, "文件中的顶级声明必须以"),
		first(`\bor\b`, "或"),
		first(`modifier`, "修饰符开头"),
		lastPeriod,
	},
	"TS1054": {first(`\bA\b`, ""), first(`accessor cannot have parameters`, "访问器不能具有参数"), lastPeriod},
	"TS1064": {
		escapeGenerics,
		first(`The return type of an async function or method must be the`, "异步函数或方法的返回类型必须为"),
		first(`type. Did you mean to write`, "类型。你是否是指写入"),
	},
	"TS1068": {
		first(`Unexpected token. A constructor, method, accessor, or property was expected`, "意外的标记。应为构造函数、方法、访问器或属性"),
		lastPeriod,
	},
	"TS1070": {first(`modifier cannot appear on a type member`, "修饰符不可出现在类型成员上"), lastPeriod},
	"TS1095": {
		first(`\bA\b`, ""),
		first(`accessor cannot have a return type annotation`, "访问器不能具有返回类型批注"),
		lastPeriod,
	},
	"TS1099": {first(`Type argument list cannot be empty`, "类型参数列表不能为空"), lastPeriod},
	"TS1103": {
		first(`loops are only allowed within async functions and at the top levels of modules`, "循环仅允许在异步函数和模块顶层使用"),
		lastPeriod,
	},
	"TS1107": {first(`Jump target cannot cross function boundary`, "跳转目标不能跨越函数边界"), lastPeriod},
	"TS1108": {
		first(`\bA\b`, ""),
		first(`statement can only be used within a function body`, "语句只能在函数体中使用"),
		lastPeriod,
	},
	"TS1109": {first(`Expression expected`, "应为表达式"), lastPeriod},
	"TS1110": {first(`Type expected`, "应为类型"), lastPeriod},
	"TS1117": {
		first(`An object literal cannot have multiple properties with the same name`, "对象文本不能具有多个名称相同的属性"),
		lastPeriod,
	},
	"TS1121": {
		first(`Octal literals are not allowed. Use the syntax`, "不允许使用八进制文字。请使用语法"),
		dropLastPeriod,
	},
	"TS1127": {first(`Invalid character`, "无效的字符"), lastPeriod},
	"TS1128": {first(`Declaration or statement expected`, "应为声明或语句"), lastPeriod},
	"TS1134": {first(`Variable declaration expected`, "应为变量声明"), lastPeriod},
	"TS1137": {first(`Expression or comma expected`, "应为表达式或逗号"), lastPeriod},
	"TS1138": {first(`Parameter declaration expected`, "应为参数声明"), lastPeriod},
	"TS1139": {first(`Type parameter declaration expected`, "应为类型参数声明"), lastPeriod},
	"TS1146": {first(`Declaration expected`, "应为声明"), lastPeriod},
	"TS1155": {
		htmlStart("必须初始化"),
		first(`declarations must be initialized`, "声明"),
		lastPeriod,
	},
	"TS1160": {first(`Unterminated template literal`, "未终止的模板字面量"), lastPeriod},
	"TS1161": {first(`Unterminated regular expression literal`, "未终止的正则表达式字面量"), lastPeriod},
	"TS1175": {htmlStart("已看到 "), first(`clause already seen`, "子句"), lastPeriod},
	"TS1181": {first(`Array element destructuring pattern expected`, "应为数组元素析构模式"), lastPeriod},
	"TS1183": {
		first(`An implementation cannot be declared in ambient contexts`, "不能在 "+markup.Unstyled("ambient contexts")+" 中声明实现"),
		lastPeriod,
	},
	"TS1208": {
		first(`cannot be compiled under`, "无法在"),
		first(`because it is considered a global script file. Add an`, "下编译，因为它被视为全局脚本文件。请添加"),
		first(`statement to make it a module`, "语句来使它成为模块"),
		lastPeriod,
	},
	"TS1248": {first(`A class member cannot have the`, "类成员不可具有"), first(`keyword`, "关键字"), lastPeriod},
	"TS1312": {
		all(`\s*<code`, "<code"),
		first(`Did you mean to use a`, "你的意思是使用 "),
		question,
		first(`\bAn\b`, "当包含对象文字属于解构模式时，"),
		first(`can only follow a property name when the containing object literal is part of a destructuring pattern`, "只能跟在属性名称的后面"),
		lastPeriod,
	},
	"TS1359": {
		first(`Identifier expected\.\s*(?:</span>)?\s*`, "应为标识符。"),
		first(`is a reserved word that cannot be used here`, "是保留字，不能在此处使用"),
		lastPeriod,
	},
	"TS1381": unexpectedToken,
	"TS1382": unexpectedToken,
	"TS1434": {first(`Unexpected keyword or identifier`, "意外的关键字或标识符"), lastPeriod},
	"TS1435": {first(`Unknown keyword or identifier. Did you mean`, "未知的关键字或标识符。你是不是指")},
	"TS1484": {
		first(`is a type and must be imported using a type-only import when`, "是一种类型，在启用"),
		first(`is enabled`, "时必须使用 "+markup.Code(markup.Keyword, "type")+" 关键字进行导入"),
		lastPeriod,
	},
	"TS1507": {first(`There is nothing available for repetition`, "没有可重复的内容"), lastPeriod},
	"TS1540": {
		first(`\bA\b`, ""),
		first(`declaration should not be declared using the`, "声明不应使用"),
		first(`keyword. Please use the`, "关键字。请改用"),
		first(`keyword instead`, "关键字"),
		lastPeriod,
	},
	"TS2300": {first(`Duplicate identifier`, "标识符"), lastPeriodWith("重复" + period)},
	"TS2304": {cannotFindName, dropLastPeriod},
	"TS2305": {module, hasNoExportedMember, dropLastPeriod},
	"TS2307": {
		first(`Cannot find module`, "找不到模块"),
		first(`or its corresponding type declarations`, "或其相应的类型声明"),
		lastPeriod,
	},
	"TS2314": {
		first(`Generic type`, "泛型类型"),
		first(`requires`, "需要"),
		first(`type argument\(s\)`, "个类型参数"),
		lastPeriod,
	},
	"TS2339": {property, doesNotExistOnType, dropLastPeriod},
	"TS2353": {
		first(`Object literal may only specify known properties, and`, "对象字面量只能指定已知属性，并且"),
		doesNotExistInType,
		lastPeriodWith("中" + period),
	},
	"TS2355": {
		first(`A function whose declared type is neither`, "其声明类型不为"),
		first(`, nor`, "或"),
		first(`must return a value`, "的函数必须返回值"),
		lastPeriod,
	},
	"TS2362": {
		first(`The left-hand side of an arithmetic operation must be of type`, "算术运算左侧必须是"),
		first(`or an enum type`, "或 enum 类型"),
		lastPeriod,
	},
	"TS2363": {
		first(`The right-hand side of an arithmetic operation must be of type`, "算术运算右侧必须是"),
		first(`or an enum type`, "或 enum 类型"),
		lastPeriod,
	},
	"TS2365": {first(`Operator`, "运算符"), first(`cannot be applied to types`, "不能应用于类型"), and, lastPeriod},
	"TS2367": {
		first(`This comparison appears to be unintentional because the types`, "此比较似乎是无意的，因为类型"),
		and,
		first(`have no overlap`, "没有重叠"),
		lastPeriod,
	},
	"TS2371": {
		first(`A parameter initializer is only allowed in a function or constructor implementation`, "只允许在函数或构造函数实现中使用参数初始化表达式"),
		lastPeriod,
	},
	"TS2393": {first(`Duplicate function implementation`, "函数实现重复"), lastPeriod},
	"TS2440": {
		first(`Import declaration conflicts with local declaration of`, "导入声明与"),
		lastPeriodWith("的局部声明冲突" + period),
	},
	"TS2448": {
		first(`Block-scoped variable`, "块范围变量"),
		first(`\s*used before its declaration`, "在声明之前就已使用"),
		lastPeriod,
	},
	"TS2451": {first(`Cannot redeclare block-scoped variable`, "无法重新声明块范围变量"), dropLastPeriod},
	"TS2454": {first(`Variable`, "在赋值前使用了变量"), first(`is used before being assigned`, ""), lastPeriod},
	"TS2532": {isPossibly, dropLastPeriod},
	"TS2551": {property, doesNotExistOnType, didYouMean},
	"TS2552": {cannotFindName, didYouMean},
	"TS2554": {
		first(`Expected`, "应有"),
		first(`arguments, but got`, "个参数，但获得"),
		lastPeriodWith(" 个" + period),
	},
	"TS2561": {
		first(`Object literal may only specify known properties, but`, "对象字面量只能指定已知属性，但"),
		doesNotExistInType,
		first(`\. Did you mean to write`, "中。是否要写入"),
	},
	"TS2607": {
		first(`JSX element class does not support attributes because it does not have a`, "JSX 元素类不支持attributes，因为它不具有"),
		property,
		lastPeriod,
	},
	"TS2614": {
		module,
		hasNoExportedMember,
		first(`. Did you mean to use`, "你是想改用"),
		first(`instead`, "吗"),
	},
	"TS2657": {first(`JSX expressions must have one parent element`, "JSX 表达式必须具有一个父元素"), lastPeriod},
	"TS2683": {
		implicitlyHasType,
		first(`because it does not have a type annotation`, "因为它没有类型注释"),
		lastPeriod,
	},
	"TS2693": {
		first(`only refers to a type, but is being used as a value here`, "仅表示类型，但在此处却作为值使用"),
		lastPeriod,
	},
	"TS2695": {
		first(`Left side of comma operator is unused and has no side effects`, "逗号运算符的左侧未使用，没有任何副作用"),
		lastPeriod,
	},
	"TS2702": {
		first(`only refers to a type, but is being used as a namespace here`, "仅指类型，但在此用作命名空间"),
		lastPeriod,
	},
	"TS2724": {
		first(`\s*has no exported member named\s*<code>`, ` 没有导出的成员 <code alt="variable">`),
		first(`</code>\s*\.\s*Did you mean\s*`, "</code>。你是否指的是 "),
		first(`</code>\s*\?\s*$`, "</code>?"),
	},
	"TS2739": {typeWord, isMissingProperties, missingPropertiesList},
	"TS2741": {
		property,
		first(`\s*is missing in type`, "缺失在类型"),
		first(`but required in type`, "中，但类型"),
		lastPeriodWith("中需要该属性" + period),
	},
	"TS2749": {
		first(`refers to a value, but is being used as a type here. Did you mean`, "表示值，但在此处用作类型。是否指"),
	},
	"TS2769": {
		first(`No overload matches this call`, "没有与此调用匹配的重载"),
		all(`Overload`, "重载"),
		all(`gave the following error`, "出现以下错误"),
		dropAllPeriods,
	},
	"TS2786": {
		first(`cannot be used as a JSX component.`, "不能用作 JSX 组件"+period),
		first(`Its type`, "其类型"),
		first(`is not a valid JSX element type.`, "不是有效的 JSX 元素类型"+period),
		typeColon,
		isNotAssignableToType,
		typeWord,
		isMissingProperties,
		missingPropertiesList,
		first(`\band\b`, "及其他"),
		first(`more\.`, "项"+period),
	},
	"TS6133": {
		htmlStart("已声明 "),
		first(`is declared but its value is never read`, "但从未读取其值"),
		lastPeriod,
	},
	"TS6192": {first(`All imports in import declaration are unused`, "导入声明中的所有导入都未使用"), lastPeriod},
	"TS6196": {first(`is declared but never used`, "已声明，但从未使用过"), lastPeriod},
	"TS6198": {first(`All destructured elements are unused`, "所有解构出的成员都未使用"), lastPeriod},
	"TS6385": {first(`is deprecated`, "已弃用"), lastPeriod},
	"TS7005": {variable, implicitlyHasAn, lastType, lastPeriod},
	"TS7006": {parameter, implicitlyHasAn, lastType, lastPeriod},
	"TS7008": {member, implicitlyHasAn, lastType, lastPeriod},
	"TS7017": {
		elementImplicitlyHasAn,
		first(`type because type`, "类型，因为类型"),
		first(`has no index signature`, "没有索引签名"),
		lastPeriod,
	},
	"TS7022": {
		implicitlyHasType,
		first(`because it does not have a type annotation and is referenced directly or indirectly in its own initializer`, "因为它不具有类型批注，且在其自身的初始化表达式中得到直接或间接引用"),
		lastPeriod,
	},
	"TS7031": {first(`Binding element`, "绑定元素"), implicitlyHasAn, lastType, lastPeriod},
	"TS7043": {variable, implicitlyHasAn, inferredFromUsage, lastPeriod},
	"TS7044": {parameter, implicitlyHasAn, inferredFromUsage, lastPeriod},
	"TS7045": {member, implicitlyHasAn, inferredFromUsage, lastPeriod},
	"TS7050": {implicitlyHasAn, first(`return `, "返回"), inferredFromUsage, lastPeriod},
	"TS7051": {
		first(`Parameter has a name but no type. Did you mean`, "参数具有名称，但不具有类型。你是想使用"),
		question,
	},
	"TS7053": {
		elementImplicitlyHasAn,
		typeWithSpace,
		first(`because expression of type`, "，因为类型为"),
		first(`can't be used to index type`, "的表达式不能用于索引类型"),
		property,
		doesNotExistOnType,
	},
	"TS8010": {
		first(`Type annotations can only be used in TypeScript files`, "类型注释只能在 "+markup.Unstyled("TypeScript")+" 文件中使用"),
		lastPeriod,
	},
	"TS17000": {
		first(`JSX attributes must only be assigned a non-empty`, "只能为 JSX 属性分配非空"),
		first(`expression`, "表达式"),
		dropLastPeriod,
	},
	"TS18046": {first(`is of type`, "的类型为"), dropLastPeriod},
	"TS18047": {isPossibly, dropLastPeriod},
	"TS18048": {isPossibly, dropLastPeriod},
	"TS80001": {
		first(`File is a CommonJS module; it may be converted to an ES module`,
			"文件是 "+markup.Code(markup.Class, "CommonJS")+" 模块; 它可能会转换为 "+markup.Code(markup.Class, "ES")+" 模块"),
		lastPeriod,
	},
	"TS80003": {first(`Import may be converted to a default import`, "导入可能会转换为默认导入"), dropLastPeriod},
}
