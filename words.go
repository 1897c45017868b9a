package lipsum

// vocabulary is the built-in word list. It is never written after package
// initialisation, so concurrent readers need no locking.
var vocabulary = []string{
	"lorem", "ipsum", "dolor", "sit", "amet", "consectetur", "adipiscing", "elit",
	"sed", "do", "eiusmod", "tempor", "incididunt", "ut", "labore", "et", "dolore",
	"magna", "aliqua", "enim", "ad", "minim", "veniam", "quis", "nostrud",
	"exercitation", "ullamco", "laboris", "nisi", "aliquip", "ex", "ea", "commodo",
	"consequat", "duis", "aute", "irure", "in", "reprehenderit", "voluptate", "velit",
	"esse", "cillum", "fugiat", "nulla", "pariatur", "excepteur", "sint", "occaecat",
	"cupidatat", "non", "proident", "sunt", "culpa", "qui", "officia", "deserunt",
	"mollit", "anim", "id", "est", "laborum", "alias", "consequatur", "aut",
	"perferendis", "voluptatem", "accusantium", "doloremque", "aperiam", "eaque",
	"ipsa", "quae", "ab", "illo", "inventore", "veritatis", "quasi", "architecto",
	"beatae", "vitae", "dicta", "explicabo", "aspernatur", "odit", "fugit", "quia",
	"consequuntur", "magni", "dolores", "eos", "ratione", "sequi", "nesciunt",
	"neque", "dolorem", "adipisci", "numquam", "eius", "modi", "tempora", "incidunt",
	"magnam", "aliquam", "quaerat", "minima", "nostrum", "exercitationem", "ullam",
	"corporis", "nemo", "ipsam", "voluptas", "suscipit", "laboriosam", "aliquid",
	"commodi", "autem", "vel", "eum", "iure", "quam", "nihil", "molestiae", "iusto",
	"odio", "dignissimos", "ducimus", "blanditiis", "praesentium", "laudantium",
	"totam", "rem", "voluptatum", "deleniti", "atque", "corrupti", "quos", "quas",
	"molestias", "excepturi", "occaecati", "cupiditate", "provident", "perspiciatis",
	"unde", "omnis", "iste", "natus", "error", "similique", "mollitia", "animi",
	"dolorum", "fuga", "harum", "quidem", "rerum", "facilis", "expedita",
	"distinctio", "nam", "libero", "tempore", "cum", "soluta", "nobis", "eligendi",
	"optio", "cumque", "impedit", "quo", "porro", "quisquam", "minus", "quod",
	"maxime", "placeat", "facere", "possimus", "assumenda", "repellendus",
	"temporibus", "quibusdam", "illum", "at", "vero", "accusamus", "officiis",
	"debitis", "necessitatibus", "saepe", "eveniet", "voluptates", "repudiandae",
	"recusandae", "itaque", "earum", "hic", "tenetur", "a", "sapiente", "delectus",
	"reiciendis", "voluptatibus", "maiores", "doloribus", "asperiores", "repellat",
	"accumsan", "aenean", "aliquet", "ante", "arcu", "auctor", "augue", "bibendum",
	"blandit", "condimentum", "congue", "convallis", "cras", "cursus", "dapibus",
	"diam", "dictum", "dictumst", "dignissim", "donec", "egestas", "eget", "eleifend",
	"elementum", "eros", "euismod", "facilisi", "facilisis", "fames", "faucibus",
	"felis", "fermentum", "feugiat", "finibus", "fringilla", "gravida", "habitant",
	"habitasse", "hac", "hendrerit", "iaculis", "imperdiet", "integer", "interdum",
	"justo", "lacinia", "lacus", "laoreet", "lectus", "leo", "ligula", "lobortis",
	"luctus", "maecenas", "massa", "mattis", "mauris", "metus", "mi", "morbi", "nec",
	"netus", "nibh", "nisl", "nunc", "orci", "ornare", "pellentesque", "pharetra",
	"phasellus", "placerat", "platea", "porta", "porttitor", "posuere", "potenti",
	"pretium", "pulvinar", "purus", "quisque", "rhoncus", "risus", "rutrum",
	"sagittis", "sapien", "scelerisque", "semper", "senectus", "sodales",
	"sollicitudin", "suspendisse", "tellus", "tincidunt", "tortor", "tristique",
	"turpis", "ultrices", "ultricies", "urna", "varius", "vehicula", "vestibulum",
	"vivamus", "viverra", "volutpat", "vulputate", "accommodare", "aeque", "albucius",
	"alienum", "alterum", "antiopam", "appareat", "appellantur", "assentior",
	"audiam", "brute", "causae", "cetero", "civibus", "clita", "consul",
	"contentiones", "convenire", "copiosae", "corrumpit", "debet", "decore",
	"definiebas", "delicata", "dicant", "dicat", "dissentiet", "doctus", "duo",
	"efficiendi", "eirmod", "eloquentiam", "epicuri", "erant", "errem", "etiam",
	"everti", "expetendis", "facete", "falli", "fastidii", "feugait", "forensibus",
	"graece", "graeci", "gubergren", "habemus", "homero", "iisque", "inani",
	"integre", "invenire", "iriure", "latine", "legere", "liber", "libris",
	"lucilius", "ludus", "maiorum", "malis", "mandamus", "mazim", "mea", "mei",
	"menandri", "mentitum", "minimum", "moderatius", "mucius", "mutat", "nominavi",
	"noster", "novum", "nusquam", "omittam", "oporteat", "option", "oratio",
	"pertinax", "petentium", "philosophia", "ponderum", "postea", "prima",
	"principes", "probatus", "propriae", "quaeque", "quando", "quodsi", "recteque",
	"reformidans", "regione", "salutatus", "sanctus", "scaevola", "scripta",
	"senserit", "signiferumque", "singulis", "sonet", "splendide", "suavitate",
	"summo", "tacimates", "tamquam", "tantas", "tation", "timeam", "torquatos",
	"utamur", "utinam", "veri", "verear", "vidisse", "viris", "vituperata", "vocibus",
	"volumus", "zril",
}

// Vocabulary returns a copy of the built-in word list.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary)
	return out
}
