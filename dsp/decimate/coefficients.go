package decimate

// Half-filter anti-alias coefficients, center tap first. All are even-symmetric
// linear-phase low-pass designs, one per built-in decimation factor.

var dec2FIR = [48]float64{
	0.47312629e+00, 0.31697387e+00, 0.26678406e-01, -0.10212776e+00,
	-0.26100356e-01, 0.57145566e-01, 0.25159817e-01, -0.36581896e-01,
	-0.23883324e-01, 0.24321463e-01, 0.22318326e-01, -0.16004425e-01,
	-0.20517055e-01, 0.99688675e-02, 0.18537275e-01, -0.54459628e-02,
	-0.16433518e-01, 0.20369552e-02, 0.14277564e-01, 0.50962088e-03,
	-0.12123583e-01, -0.23524212e-02, 0.10030696e-01, 0.36127516e-02,
	-0.80487542e-02, -0.43881042e-02, 0.62203603e-02, 0.47640391e-02,
	-0.45795627e-02, -0.48192143e-02, 0.31499979e-02, 0.46267062e-02,
	-0.19449759e-02, -0.42532040e-02, 0.96769247e-03, 0.37597087e-02,
	-0.21371132e-03, -0.32004546e-02, -0.32992219e-03, 0.26274207e-02,
	0.67918003e-03, -0.20938036e-02, -0.85202418e-03, 0.16962707e-02,
	0.87003352e-03, -0.19099547e-02, -0.33559431e-02, -0.33131917e-03,
}

var dec3FIR = [71]float64{
	0.31535816e+00, 0.26616585e+00, 0.14575759e+00, 0.17844718e-01,
	-0.57989098e-01, -0.61381415e-01, -0.17455403e-01, 0.27205415e-01,
	0.38973324e-01, 0.16825307e-01, -0.14348116e-01, -0.27822647e-01,
	-0.15969098e-01, 0.71774079e-02, 0.20735700e-01, 0.14920589e-01,
	-0.26327996e-02, -0.15616039e-01, -0.13714714e-01, -0.41046151e-03,
	0.11650560e-01, 0.12385793e-01, 0.24693119e-02, -0.84637869e-02,
	-0.10977356e-01, -0.38227537e-02, 0.58662295e-02, 0.95316246e-02,
	0.46434188e-02, -0.37460821e-02, -0.80886949e-02, -0.50521158e-02,
	0.20347144e-02, 0.66878777e-02, 0.51394254e-02, -0.68287796e-03,
	-0.53611984e-02, -0.49797446e-02, -0.35139307e-03, 0.41367821e-02,
	0.46373457e-02, 0.11029486e-02, -0.30388678e-02, -0.41676573e-02,
	-0.16067328e-02, 0.20830208e-02, 0.36205212e-02, 0.18995546e-02,
	-0.12775299e-02, -0.30384576e-02, -0.20179669e-02, 0.62483293e-03,
	0.24575219e-02, 0.19959896e-02, -0.12281968e-03, -0.19090844e-02,
	-0.18706999e-02, -0.23879687e-03, 0.14155055e-02, 0.16748102e-02,
	0.47103246e-03, -0.10020733e-02, -0.14473109e-02, -0.58572053e-03,
	0.71034848e-03, 0.12577202e-02, 0.60853921e-03, -0.79453795e-03,
	-0.15070150e-02, -0.27735722e-02, -0.57726190e-03,
}

var dec4FIR = [91]float64{
	0.23653504e+00, 0.21532360e+00, 0.15848082e+00, 0.83793312e-01,
	0.13365105e-01, -0.34419119e-01, -0.51046878e-01, -0.39812922e-01,
	-0.13070323e-01, 0.13739644e-01, 0.28548554e-01, 0.26923735e-01,
	0.12592813e-01, -0.55519193e-02, -0.18260375e-01, -0.20213991e-01,
	-0.11949001e-01, 0.11730746e-02, 0.12122922e-01, 0.15773855e-01,
	0.11154728e-01, 0.14588218e-02, -0.79624243e-02, -0.12446117e-01,
	-0.10243686e-01, -0.30995123e-02, 0.49446635e-02, 0.97706541e-02,
	0.92410743e-02, 0.40912377e-02, -0.26885252e-02, -0.75423168e-02,
	-0.81806388e-02, -0.46254322e-02, 0.98837493e-03, 0.56574643e-02,
	0.70931828e-02, 0.48204092e-02, 0.27697056e-03, -0.40607406e-02,
	-0.60094716e-02, -0.47603725e-02, -0.11885283e-02, 0.27206815e-02,
	0.49573286e-02, 0.45121713e-02, 0.18078703e-02, -0.16159373e-02,
	-0.39624022e-02, -0.41275406e-02, -0.21834560e-02, 0.72517502e-03,
	0.30510179e-02, 0.36549442e-02, 0.23592040e-02, -0.36519799e-04,
	-0.22335923e-02, -0.31325626e-02, -0.23753699e-02, -0.47197170e-03,
	0.15254335e-02, 0.25965930e-02, 0.22699400e-02, 0.81899471e-03,
	-0.93285192e-03, -0.20744186e-02, -0.20755990e-02, -0.10270840e-02,
	0.45596727e-03, 0.15875453e-02, 0.18238572e-02, 0.11186297e-02,
	-0.93354625e-04, -0.11566642e-02, -0.15448434e-02, -0.11173668e-02,
	-0.15881853e-03, 0.79965324e-03, 0.12694919e-02, 0.10489000e-02,
	0.30336727e-03, -0.54487761e-03, -0.10457698e-02, -0.94576413e-03,
	-0.29340666e-03, 0.60871453e-03, 0.13765346e-02, 0.17459453e-02,
	0.17342302e-02, 0.17703171e-02, -0.78610331e-03,
}

var dec5FIR = [111]float64{
	0.18922436e+00, 0.17825589e+00, 0.14762825e+00, 0.10361496e+00,
	0.54943368e-01, 0.10695269e-01, -0.21801252e-01, -0.38539425e-01,
	-0.39482988e-01, -0.28172743e-01, -0.10461548e-01, 0.72293030e-02,
	0.19629899e-01, 0.23857031e-01, 0.19867271e-01, 0.10076012e-01,
	-0.16730814e-02, -0.11430031e-01, -0.16343743e-01, -0.15406003e-01,
	-0.95601920e-02, -0.12011472e-02, 0.67212107e-02, 0.11686970e-01,
	0.12363423e-01, 0.89212917e-02, 0.28455369e-02, -0.36542960e-02,
	-0.84163100e-02, -0.10022298e-01, -0.81948247e-02, -0.38015433e-02,
	0.15175294e-02, 0.59415763e-02, 0.80774855e-02, 0.73840916e-02,
	0.42904904e-02, -0.14044337e-04, -0.40227529e-02, -0.64289104e-02,
	-0.65423511e-02, -0.44770911e-02, -0.10602982e-02, 0.24869707e-02,
	0.49791960e-02, 0.56554032e-02, 0.44051381e-02, 0.17638088e-02,
	-0.13042900e-02, -0.37535410e-02, -0.48074462e-02, -0.42014252e-02,
	-0.22375220e-02, 0.34752686e-03, 0.26567061e-02, 0.39369017e-02,
	0.38236496e-02, 0.24387422e-02, 0.31702407e-03, -0.17899896e-02,
	-0.31829374e-02, -0.34412947e-02, -0.25477768e-02, -0.86848100e-03,
	0.98881521e-03, 0.23946902e-02, 0.29073050e-02, 0.24096994e-02,
	0.11268370e-02, -0.46738447e-03, -0.18248872e-02, -0.25087805e-02,
	-0.23346422e-02, -0.14139037e-02, -0.10080911e-03, 0.11430616e-02,
	0.19060248e-02, 0.19636080e-02, 0.13379015e-02, 0.27951988e-03,
	-0.83641545e-03, -0.16343265e-02, -0.18772145e-02, -0.15157261e-02,
	-0.71785948e-03, 0.22151141e-03, 0.98129292e-03, 0.13131760e-02,
	0.11324680e-02, 0.53038984e-03, -0.26810885e-03, -0.99059893e-03,
	-0.14061579e-02, -0.14018975e-02, -0.10119241e-02, -0.39880717e-03,
	0.21137166e-03, 0.60708891e-03, 0.66196767e-03, 0.36935217e-03,
	-0.16124418e-03, -0.74757589e-03, -0.11960072e-02, -0.13651208e-02,
	-0.12058818e-02, -0.77180623e-03, -0.19336015e-03, 0.36705163e-03,
	0.76842657e-03, 0.92948624e-03, 0.22739838e-02,
}

var dec6FIR = [91]float64{
	0.16570362e+00, 0.15829441e+00, 0.13725868e+00, 0.10594265e+00,
	0.69211230e-01, 0.32528229e-01, 0.95806678e-03, -0.21721859e-01,
	-0.33611827e-01, -0.34888856e-01, -0.27580921e-01, -0.14997372e-01,
	-0.94359554e-03, 0.11083508e-01, 0.18581118e-01, 0.20429686e-01,
	0.16964789e-01, 0.97183716e-02, 0.92194974e-03, -0.70848679e-02,
	-0.12422763e-01, -0.14064534e-01, -0.11991728e-01, -0.71014166e-02,
	-0.89137035e-03, 0.49562268e-02, 0.90078600e-02, 0.10408280e-01,
	0.90432446e-02, 0.54955026e-02, 0.85260952e-03, -0.36210883e-02,
	-0.68052970e-02, -0.79971515e-02, -0.70541361e-02, -0.43872511e-02,
	-0.80762105e-03, 0.27008946e-02, 0.52497657e-02, 0.62641921e-02,
	0.56016045e-02, 0.35561360e-02, 0.75419003e-03, -0.20313612e-02,
	-0.40918030e-02, -0.49545085e-02, -0.44863801e-02, -0.29051360e-02,
	-0.69879252e-03, 0.15243914e-02, 0.31950874e-02, 0.39263805e-02,
	0.35993042e-02, 0.23769522e-02, 0.63838286e-03, -0.11335427e-02,
	-0.24846792e-02, -0.30999891e-02, -0.28772806e-02, -0.19367724e-02,
	-0.57383557e-03, 0.83092984e-03, 0.19156958e-02, 0.24286588e-02,
	0.22825976e-02, 0.15665065e-02, 0.50730573e-03, -0.59655984e-03,
	-0.14599159e-02, -0.18816034e-02, -0.17901543e-02, -0.12505304e-02,
	-0.43752801e-03, 0.41982584e-03, 0.10982298e-02, 0.14395756e-02,
	0.13833372e-02, 0.97796321e-03, 0.35366282e-03, -0.30664937e-03,
	-0.83971326e-03, -0.10991644e-02, -0.10712864e-02, -0.71174919e-03,
	-0.25581248e-03, 0.43810415e-03, 0.71178772e-03, 0.14833882e-02,
	0.72977401e-03, 0.22810167e-02, 0.11542854e-02,
}

var dec7FIR = [113]float64{
	0.14208198e+00, 0.13739452e+00, 0.12389062e+00, 0.10316056e+00,
	0.77608004e-01, 0.50108083e-01, 0.23616169e-01, 0.77113276e-03,
	-0.16440101e-01, -0.26909120e-01, -0.30497886e-01, -0.27981848e-01,
	-0.20865075e-01, -0.11100596e-01, -0.76022197e-03, 0.82820896e-02,
	0.14618799e-01, 0.17472565e-01, 0.16758278e-01, 0.13016257e-01,
	0.72571430e-02, 0.74292615e-03, -0.52608857e-02, -0.97016394e-02,
	-0.11911346e-01, -0.11686133e-01, -0.92841610e-02, -0.53405212e-02,
	-0.71840314e-03, 0.36636740e-02, 0.70070671e-02, 0.87675247e-02,
	0.87357759e-02, 0.70546297e-02, 0.41608354e-02, 0.68841781e-03,
	-0.26673293e-02, -0.52824821e-02, -0.67139948e-02, -0.67736702e-02,
	-0.55438336e-02, -0.33427100e-02, -0.65325515e-03, 0.19840142e-02,
	0.40728515e-02, 0.52518910e-02, 0.53568939e-02, 0.44368859e-02,
	0.27307249e-02, 0.61371550e-03, -0.14870598e-02, -0.31737122e-02,
	-0.41507659e-02, -0.42769266e-02, -0.35821130e-02, -0.22478071e-02,
	-0.56846417e-03, 0.11144583e-02, 0.24819272e-02, 0.32929941e-02,
	0.34265392e-02, 0.29004803e-02, 0.18556728e-02, 0.52273611e-03,
	-0.82722993e-03, -0.19346501e-02, -0.26047612e-02, -0.27381419e-02,
	-0.23428579e-02, -0.15266940e-02, -0.47217472e-03, 0.60416642e-03,
	0.14966615e-02, 0.20483169e-02, 0.21752114e-02, 0.18809054e-02,
	0.12483622e-02, 0.42107934e-03, -0.43112988e-03, -0.11449105e-02,
	-0.15943006e-02, -0.17113318e-02, -0.14960549e-02, -0.10118610e-02,
	-0.36934030e-03, 0.29832160e-03, 0.86243439e-03, 0.12237863e-02,
	0.13277864e-02, 0.11733547e-02, 0.80783467e-03, 0.31598710e-03,
	-0.19982469e-03, -0.63952431e-03, -0.92532497e-03, -0.10140305e-02,
	-0.90339431e-03, -0.62933657e-03, -0.25537529e-03, 0.13938319e-03,
	0.47917303e-03, 0.70110161e-03, 0.77338412e-03, 0.68326876e-03,
	0.47101121e-03, 0.14812217e-03, -0.15542324e-03, -0.53318450e-03,
	-0.62111754e-03, -0.10503677e-02, -0.43352076e-03, -0.16600490e-02,
	-0.79061883e-03,
}
