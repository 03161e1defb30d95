package deps

import "testing"

func TestExtractAutowiredFields(t *testing.T) {
	content := `
public class PaymentController {
    @Autowired
    private PaymentService paymentService;

    @Autowired
    protected AuditLogger auditLogger;
}`

	edges := Extract("PaymentController", content)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2: %v", len(edges), edges)
	}
	for _, e := range edges {
		if e.From != "PaymentController" || e.Kind != EdgeAutowired {
			t.Errorf("unexpected edge %+v", e)
		}
	}
	if edges[0].To != "paymentService" || edges[1].To != "auditLogger" {
		t.Errorf("targets = %q, %q", edges[0].To, edges[1].To)
	}
}

func TestExtractConstructorParams(t *testing.T) {
	content := `
public class PaymentService {
    private final MerchantRepository merchantRepository;
    private final TxRepository txRepository;

    public PaymentService(MerchantRepository merchantRepository, TxRepository txRepository) {
        this.merchantRepository = merchantRepository;
        this.txRepository = txRepository;
    }
}`

	edges := Extract("PaymentService", content)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2: %v", len(edges), edges)
	}
	if edges[0].To != "merchantRepository" || edges[0].Kind != EdgeConstructor {
		t.Errorf("first edge = %+v", edges[0])
	}
	if edges[1].To != "txRepository" {
		t.Errorf("second edge = %+v", edges[1])
	}
}

func TestExtractIgnoresOtherConstructors(t *testing.T) {
	content := `
public class PaymentService {
    public OtherThing(Foo foo) {}
}`

	if edges := Extract("PaymentService", content); len(edges) != 0 {
		t.Errorf("got %d edges, want 0: %v", len(edges), edges)
	}
}

func TestExtractEmptyConstructor(t *testing.T) {
	content := `public class Worker { public Worker() {} }`
	if edges := Extract("Worker", content); len(edges) != 0 {
		t.Errorf("got %d edges, want 0: %v", len(edges), edges)
	}
}

func TestValidateKeepsResolvableEdges(t *testing.T) {
	edges := []Edge{
		{From: "PaymentController", To: "paymentService", Kind: EdgeAutowired},
		{From: "PaymentController", To: "ghostService", Kind: EdgeAutowired},
		{From: "PaymentService", To: "MerchantRepository", Kind: EdgeConstructor},
	}
	known := map[string]bool{
		"PaymentController":  true,
		"PaymentService":     true,
		"MerchantRepository": true,
	}

	valid := Validate(edges, known)
	if len(valid) != 2 {
		t.Fatalf("got %d valid edges, want 2: %v", len(valid), valid)
	}
	// Dangling edges are dropped from the validated subset but remain in
	// the input slice untouched.
	if len(edges) != 3 {
		t.Errorf("input slice mutated: %v", edges)
	}
}
