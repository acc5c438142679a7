package catalog

import "github.com/alexiusacademia/gosteel/internal/aisc"

// W-shape section properties in metric units (cm, cm², cm³, cm⁴, cm⁶),
// transcribed from the AISC shapes database. All shapes carry the A992
// material defaults.
var shapes = map[string]aisc.SectionProperties{
	// W44 series
	"w44x335": {D: 114.05, Bf: 40.16, Tf: 3.61, Tw: 2.36, A: 642.58, Ix: 527934.82, Sx: 9258.25, Zx: 10409.15, Rx: 28.68, Iy: 54789.93, Sy: 2728.35, Zy: 4131.37, Ry: 9.22, J: 312.98, Cw: 6746259.74, Ho: 110.44, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w44x290": {D: 112.65, Bf: 39.88, Tf: 3.05, Tw: 2.01, A: 556.13, Ix: 453349.76, Sx: 8049.82, Zx: 9012.26, Rx: 28.55, Iy: 46633.85, Sy: 2338.43, Zy: 3540.09, Ry: 9.17, J: 206.90, Cw: 5656699.37, Ho: 109.60, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w44x230": {D: 109.73, Bf: 39.37, Tf: 2.36, Tw: 1.57, A: 441.29, Ix: 352862.44, Sx: 6432.97, Zx: 7150.46, Rx: 28.27, Iy: 35689.36, Sy: 1812.67, Zy: 2738.74, Ry: 9.02, J: 102.06, Cw: 4194879.00, Ho: 107.37, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W40 series
	"w40x503": {D: 106.50, Bf: 42.47, Tf: 5.18, Tw: 3.33, A: 964.52, Ix: 548688.37, Sx: 10309.23, Zx: 11797.72, Rx: 23.85, Iy: 86066.08, Sy: 4053.79, Zy: 6145.81, Ry: 9.45, J: 880.26, Cw: 8847551.57, Ho: 101.32, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w40x397": {D: 102.92, Bf: 41.15, Tf: 3.99, Tw: 2.57, A: 760.00, Ix: 416930.90, Sx: 8105.35, Zx: 9175.91, Rx: 23.42, Iy: 64558.64, Sy: 3138.19, Zy: 4752.23, Ry: 9.22, J: 463.55, Cw: 6368811.42, Ho: 98.93, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w40x331": {D: 100.33, Bf: 40.26, Tf: 3.28, Tw: 2.13, A: 634.84, Ix: 340773.08, Sx: 6794.44, Zx: 7649.30, Rx: 23.19, Iy: 52238.27, Sy: 2594.78, Zy: 3917.88, Ry: 9.07, J: 295.08, Cw: 4987879.95, Ho: 97.05, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W36 series
	"w36x300": {D: 94.74, Bf: 40.64, Tf: 2.77, Tw: 1.78, A: 575.48, Ix: 292881.35, Sx: 6182.91, Zx: 6943.19, Rx: 22.53, Iy: 43965.44, Sy: 2164.22, Zy: 3278.70, Ry: 8.74, J: 214.82, Cw: 4492472.62, Ho: 91.97, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w36x232": {D: 91.95, Bf: 39.88, Tf: 2.11, Tw: 1.37, A: 444.52, Ix: 221943.75, Sx: 4827.51, Zx: 5384.65, Rx: 22.35, Iy: 33169.41, Sy: 1663.68, Zy: 2516.13, Ry: 8.64, J: 105.18, Cw: 3219466.88, Ho: 89.84, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w36x194": {D: 90.37, Bf: 30.48, Tf: 2.13, Tw: 1.27, A: 371.61, Ix: 183787.46, Sx: 4068.38, Zx: 4509.13, Rx: 22.25, Iy: 15569.18, Sy: 1021.94, Zy: 1567.74, Ry: 6.48, J: 86.99, Cw: 1270506.24, Ho: 88.24, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w36x160": {D: 88.90, Bf: 30.48, Tf: 1.73, Tw: 1.02, A: 306.45, Ix: 149762.81, Sx: 3369.02, Zx: 3722.60, Rx: 22.10, Iy: 12569.87, Sy: 825.16, Zy: 1264.52, Ry: 6.40, J: 48.26, Cw: 998533.44, Ho: 87.17, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w36x135": {D: 87.63, Bf: 30.48, Tf: 1.40, Tw: 0.79, A: 258.06, Ix: 122819.88, Sx: 2804.84, Zx: 3080.64, Rx: 21.82, Iy: 10088.61, Sy: 662.26, Zy: 1012.90, Ry: 6.25, J: 25.75, Cw: 760855.68, Ho: 86.23, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W33 series
	"w33x241": {D: 87.50, Bf: 40.64, Tf: 2.39, Tw: 1.40, A: 462.58, Ix: 233569.68, Sx: 5340.42, Zx: 5983.61, Rx: 22.48, Iy: 36522.48, Sy: 1798.19, Zy: 2721.29, Ry: 8.89, J: 148.64, Cw: 3777691.87, Ho: 85.11, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w33x201": {D: 85.34, Bf: 40.13, Tf: 1.96, Tw: 1.17, A: 385.48, Ix: 191064.28, Sx: 4478.12, Zx: 4994.99, Rx: 22.28, Iy: 29670.69, Sy: 1479.40, Zy: 2239.35, Ry: 8.79, J: 84.77, Cw: 2895289.92, Ho: 83.38, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w33x152": {D: 83.44, Bf: 28.96, Tf: 1.88, Tw: 1.07, A: 291.61, Ix: 143975.72, Sx: 3452.00, Zx: 3814.84, Rx: 22.23, Iy: 11902.04, Sy: 822.58, Zy: 1262.90, Ry: 6.40, J: 64.77, Cw: 1142125.44, Ho: 81.56, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w33x130": {D: 82.30, Bf: 28.96, Tf: 1.57, Tw: 0.89, A: 249.03, Ix: 120929.76, Sx: 2941.76, Zx: 3243.87, Rx: 22.05, Iy: 9912.26, Sy: 685.16, Zy: 1049.68, Ry: 6.30, J: 38.71, Cw: 887709.12, Ho: 80.73, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w33x118": {D: 81.59, Bf: 28.96, Tf: 1.40, Tw: 0.76, A: 226.45, Ix: 108012.48, Sx: 2648.65, Zx: 2913.55, Rx: 21.87, Iy: 8797.42, Sy: 607.87, Zy: 929.68, Ry: 6.25, J: 27.42, Cw: 761690.88, Ho: 80.19, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W30 series
	"w30x211": {D: 79.88, Bf: 38.81, Tf: 2.16, Tw: 1.27, A: 404.52, Ix: 173886.24, Sx: 4355.48, Zx: 4862.26, Rx: 20.73, Iy: 28654.08, Sy: 1477.42, Zy: 2237.42, Ry: 8.41, J: 117.42, Cw: 2744958.72, Ho: 77.72, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x173": {D: 77.85, Bf: 38.05, Tf: 1.73, Tw: 1.07, A: 331.61, Ix: 139331.52, Sx: 3580.65, Zx: 3978.71, Rx: 20.52, Iy: 22752.26, Sy: 1196.13, Zy: 1808.39, Ry: 8.28, J: 63.87, Cw: 2041709.44, Ho: 76.12, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x132": {D: 76.20, Bf: 26.67, Tf: 1.65, Tw: 0.97, A: 253.55, Ix: 104887.68, Sx: 2753.87, Zx: 3039.35, Rx: 20.35, Iy: 8264.52, Sy: 620.00, Zy: 953.55, Ry: 5.72, J: 46.13, Cw: 751822.08, Ho: 74.55, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x124": {D: 75.69, Bf: 26.42, Tf: 1.57, Tw: 0.89, A: 237.42, Ix: 98273.55, Sx: 2598.06, Zx: 2864.52, Rx: 20.35, Iy: 7735.48, Sy: 585.81, Zy: 897.42, Ry: 5.72, J: 39.35, Cw: 694870.08, Ho: 74.12, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x116": {D: 75.18, Bf: 26.67, Tf: 1.42, Tw: 0.84, A: 222.58, Ix: 91659.42, Sx: 2439.35, Zx: 2689.03, Rx: 20.27, Iy: 7206.45, Sy: 540.65, Zy: 826.45, Ry: 5.69, J: 30.97, Cw: 633564.48, Ho: 73.76, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x108": {D: 74.68, Bf: 26.42, Tf: 1.32, Tw: 0.76, A: 207.10, Ix: 84544.90, Sx: 2264.52, Zx: 2493.87, Rx: 20.22, Iy: 6593.55, Sy: 499.35, Zy: 763.87, Ry: 5.64, J: 24.52, Cw: 566904.96, Ho: 73.36, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x99": {D: 74.17, Bf: 26.67, Tf: 1.17, Tw: 0.64, A: 189.68, Ix: 76547.10, Sx: 2064.52, Zx: 2267.74, Rx: 20.12, Iy: 5896.77, Sy: 442.58, Zy: 676.13, Ry: 5.59, J: 16.77, Cw: 482293.76, Ho: 73.00, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w30x90": {D: 73.66, Bf: 26.42, Tf: 1.04, Tw: 0.61, A: 172.26, Ix: 68966.13, Sx: 1873.55, Zx: 2051.61, Rx: 20.02, Iy: 5264.52, Sy: 398.71, Zy: 609.03, Ry: 5.54, J: 12.26, Cw: 424941.12, Ho: 72.62, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W27 series
	"w27x178": {D: 71.12, Bf: 35.81, Tf: 1.93, Tw: 1.19, A: 341.29, Ix: 133709.03, Sx: 3761.29, Zx: 4194.84, Rx: 19.79, Iy: 20736.77, Sy: 1158.71, Zy: 1753.55, Ry: 7.80, J: 89.03, Cw: 1875774.72, Ho: 69.19, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w27x146": {D: 69.34, Bf: 35.56, Tf: 1.57, Tw: 0.97, A: 280.00, Ix: 107548.39, Sx: 3102.58, Zx: 3437.42, Rx: 19.61, Iy: 16469.03, Sy: 926.45, Zy: 1400.00, Ry: 7.67, J: 49.03, Cw: 1389535.68, Ho: 67.77, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w27x114": {D: 68.07, Bf: 25.91, Tf: 1.57, Tw: 0.84, A: 218.71, Ix: 84461.29, Sx: 2483.23, Zx: 2738.71, Rx: 19.66, Iy: 6777.42, Sy: 523.87, Zy: 803.87, Ry: 5.56, J: 38.06, Cw: 607741.44, Ho: 66.50, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w27x102": {D: 67.31, Bf: 25.40, Tf: 1.42, Tw: 0.79, A: 195.48, Ix: 75631.61, Sx: 2248.39, Zx: 2473.55, Rx: 19.66, Iy: 6031.61, Sy: 475.48, Zy: 727.74, Ry: 5.56, J: 29.03, Cw: 538064.64, Ho: 65.89, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w27x94": {D: 66.80, Bf: 25.40, Tf: 1.27, Tw: 0.74, A: 180.65, Ix: 69435.48, Sx: 2079.35, Zx: 2283.87, Rx: 19.61, Iy: 5515.48, Sy: 434.84, Zy: 664.52, Ry: 5.51, J: 22.58, Cw: 480386.88, Ho: 65.53, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w27x84": {D: 66.04, Bf: 25.40, Tf: 1.12, Tw: 0.64, A: 161.29, Ix: 61187.10, Sx: 1853.55, Zx: 2028.39, Rx: 19.51, Iy: 4833.55, Sy: 381.29, Zy: 581.29, Ry: 5.46, J: 15.48, Cw: 407225.28, Ho: 65.92, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W24 series
	"w24x162": {D: 63.25, Bf: 32.77, Tf: 1.73, Tw: 1.07, A: 310.97, Ix: 109631.61, Sx: 3468.39, Zx: 3869.03, Rx: 18.77, Iy: 17238.71, Sy: 1052.26, Zy: 1593.55, Ry: 7.44, J: 74.19, Cw: 1579693.44, Ho: 61.52, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x146": {D: 62.74, Bf: 32.51, Tf: 1.57, Tw: 0.97, A: 280.00, Ix: 98523.87, Sx: 3141.94, Zx: 3491.61, Rx: 18.77, Iy: 15319.35, Sy: 942.58, Zy: 1426.45, Ry: 7.39, J: 56.77, Cw: 1401858.56, Ho: 61.17, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x131": {D: 62.23, Bf: 32.26, Tf: 1.40, Tw: 0.89, A: 251.61, Ix: 87416.13, Sx: 2809.68, Zx: 3114.84, Rx: 18.67, Iy: 13483.87, Sy: 836.77, Zy: 1264.52, Ry: 7.32, J: 42.58, Cw: 1225858.56, Ho: 60.83, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x117": {D: 61.73, Bf: 32.26, Tf: 1.24, Tw: 0.79, A: 224.52, Ix: 77391.61, Sx: 2508.39, Zx: 2774.84, Rx: 18.57, Iy: 11896.77, Sy: 738.71, Zy: 1115.48, Ry: 7.29, J: 31.61, Cw: 1067380.80, Ho: 60.49, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x104": {D: 61.21, Bf: 32.01, Tf: 1.09, Tw: 0.74, A: 199.35, Ix: 68133.55, Sx: 2226.45, Zx: 2454.84, Rx: 18.49, Iy: 10393.55, Sy: 649.68, Zy: 979.35, Ry: 7.21, J: 22.58, Cw: 915612.48, Ho: 60.12, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x94": {D: 60.96, Bf: 22.86, Tf: 1.29, Tw: 0.74, A: 180.00, Ix: 63069.03, Sx: 2069.03, Zx: 2281.29, Rx: 18.72, Iy: 4999.35, Sy: 437.42, Zy: 672.26, Ry: 5.26, J: 23.87, Cw: 421777.92, Ho: 59.67, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x84": {D: 60.45, Bf: 22.86, Tf: 1.14, Tw: 0.66, A: 160.65, Ix: 55803.87, Sx: 1847.74, Zx: 2032.26, Rx: 18.62, Iy: 4383.87, Sy: 383.87, Zy: 589.03, Ry: 5.21, J: 16.77, Cw: 361612.80, Ho: 60.31, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x76": {D: 59.94, Bf: 22.86, Tf: 1.02, Tw: 0.58, A: 145.16, Ix: 49871.61, Sx: 1664.52, Zx: 1828.39, Rx: 18.54, Iy: 3893.55, Sy: 340.65, Zy: 522.58, Ry: 5.18, J: 11.61, Cw: 311225.28, Ho: 60.92, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x68": {D: 59.69, Bf: 22.61, Tf: 0.89, Tw: 0.53, A: 130.32, Ix: 44122.58, Sx: 1479.35, Zx: 1621.94, Rx: 18.39, Iy: 3403.23, Sy: 301.29, Zy: 461.29, Ry: 5.11, J: 8.39, Cw: 264709.12, Ho: 60.80, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x62": {D: 59.44, Bf: 17.78, Tf: 1.02, Tw: 0.58, A: 118.71, Ix: 41393.55, Sx: 1393.55, Zx: 1530.97, Rx: 18.67, Iy: 1803.87, Sy: 203.23, Zy: 315.48, Ry: 3.89, J: 10.97, Cw: 125806.08, Ho: 58.42, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w24x55": {D: 58.93, Bf: 17.78, Tf: 0.89, Tw: 0.51, A: 105.81, Ix: 36393.55, Sx: 1235.48, Zx: 1352.26, Rx: 18.57, Iy: 1567.74, Sy: 176.77, Zy: 273.55, Ry: 3.84, J: 7.10, Cw: 105225.28, Ho: 58.04, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W21 series
	"w21x201": {D: 56.39, Bf: 31.24, Tf: 2.01, Tw: 1.30, A: 385.81, Ix: 104804.52, Sx: 3717.42, Zx: 4175.48, Rx: 16.48, Iy: 16969.03, Sy: 1086.45, Zy: 1653.55, Ry: 6.63, J: 115.48, Cw: 1434838.56, Ho: 54.38, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x182": {D: 55.63, Bf: 31.24, Tf: 1.78, Tw: 1.19, A: 348.39, Ix: 93447.10, Sx: 3361.29, Zx: 3762.58, Rx: 16.38, Iy: 15069.03, Sy: 965.16, Zy: 1465.81, Ry: 6.58, J: 87.10, Cw: 1260322.56, Ho: 53.85, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x166": {D: 55.12, Bf: 30.99, Tf: 1.63, Tw: 1.09, A: 318.71, Ix: 84339.35, Sx: 3061.94, Zx: 3422.58, Rx: 16.26, Iy: 13583.87, Sy: 876.77, Zy: 1330.97, Ry: 6.53, J: 67.74, Cw: 1121548.80, Ho: 53.49, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x147": {D: 54.36, Bf: 30.48, Tf: 1.42, Tw: 0.97, A: 282.58, Ix: 73231.61, Sx: 2694.84, Zx: 3000.00, Rx: 16.10, Iy: 11731.61, Sy: 770.32, Zy: 1166.45, Ry: 6.45, J: 47.10, Cw: 956870.88, Ho: 52.94, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x132": {D: 53.85, Bf: 30.48, Tf: 1.27, Tw: 0.89, A: 253.55, Ix: 65150.97, Sx: 2421.29, Zx: 2690.32, Rx: 16.03, Iy: 10393.55, Sy: 682.58, Zy: 1033.55, Ry: 6.40, J: 34.19, Cw: 834838.56, Ho: 52.58, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x122": {D: 53.59, Bf: 30.48, Tf: 1.17, Tw: 0.81, A: 233.55, Ix: 59820.00, Sx: 2233.55, Zx: 2477.42, Rx: 16.00, Iy: 9544.52, Sy: 626.45, Zy: 948.39, Ry: 6.38, J: 27.10, Cw: 755806.08, Ho: 52.42, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x111": {D: 53.09, Bf: 30.23, Tf: 1.04, Tw: 0.74, A: 213.55, Ix: 53739.35, Sx: 2024.52, Zx: 2241.94, Rx: 15.87, Iy: 8529.68, Sy: 564.52, Zy: 853.55, Ry: 6.32, J: 19.35, Cw: 660000.00, Ho: 52.05, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x101": {D: 52.83, Bf: 30.48, Tf: 0.94, Tw: 0.66, A: 193.55, Ix: 48075.48, Sx: 1821.29, Zx: 2013.55, Rx: 15.77, Iy: 7598.71, Sy: 499.35, Zy: 754.84, Ry: 6.27, J: 13.55, Cw: 572129.28, Ho: 51.89, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x93": {D: 52.32, Bf: 20.83, Tf: 1.22, Tw: 0.74, A: 178.71, Ix: 45597.42, Sx: 1744.52, Zx: 1928.39, Rx: 15.98, Iy: 3768.39, Sy: 361.94, Zy: 557.42, Ry: 4.59, J: 18.71, Cw: 266064.96, Ho: 51.10, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x83": {D: 51.82, Bf: 20.83, Tf: 1.07, Tw: 0.66, A: 159.35, Ix: 40177.42, Sx: 1551.61, Zx: 1712.90, Rx: 15.88, Iy: 3268.39, Sy: 313.55, Zy: 482.58, Ry: 4.52, J: 12.58, Cw: 221225.28, Ho: 50.75, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x73": {D: 51.56, Bf: 20.83, Tf: 0.94, Tw: 0.58, A: 140.65, Ix: 35174.19, Sx: 1366.45, Zx: 1503.87, Rx: 15.80, Iy: 2851.61, Sy: 273.55, Zy: 419.35, Ry: 4.50, J: 8.71, Cw: 187096.32, Ho: 50.62, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x68": {D: 51.31, Bf: 20.83, Tf: 0.86, Tw: 0.53, A: 130.32, Ix: 32612.26, Sx: 1272.26, Zx: 1398.71, Rx: 15.80, Iy: 2601.29, Sy: 249.68, Zy: 382.58, Ry: 4.47, J: 6.77, Cw: 168193.92, Ho: 50.45, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x62": {D: 52.07, Bf: 20.83, Tf: 0.79, Tw: 0.51, A: 118.71, Ix: 30000.00, Sx: 1153.55, Zx: 1271.61, Rx: 15.90, Iy: 2393.55, Sy: 229.68, Zy: 351.61, Ry: 4.49, J: 5.16, Cw: 153870.72, Ho: 51.28, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x57": {D: 51.56, Bf: 16.51, Tf: 0.91, Tw: 0.51, A: 109.03, Ix: 27935.48, Sx: 1084.52, Zx: 1194.84, Rx: 16.00, Iy: 1351.61, Sy: 163.87, Zy: 254.84, Ry: 3.51, J: 6.13, Cw: 86967.84, Ho: 50.65, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x50": {D: 51.31, Bf: 16.51, Tf: 0.79, Tw: 0.46, A: 96.13, Ix: 24387.10, Sx: 951.61, Zx: 1046.45, Rx: 15.93, Iy: 1169.03, Sy: 141.94, Zy: 220.65, Ry: 3.48, J: 4.19, Cw: 72580.80, Ho: 50.52, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x48": {D: 51.05, Bf: 20.32, Tf: 0.69, Tw: 0.43, A: 91.61, Ix: 23580.65, Sx: 924.52, Zx: 1016.77, Rx: 16.05, Iy: 1967.74, Sy: 193.55, Zy: 296.77, Ry: 4.63, J: 3.87, Cw: 124129.28, Ho: 50.36, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w21x44": {D: 52.32, Bf: 16.51, Tf: 0.71, Tw: 0.43, A: 84.52, Ix: 22193.55, Sx: 848.39, Zx: 932.26, Rx: 16.21, Iy: 1085.81, Sy: 131.61, Zy: 204.52, Ry: 3.58, J: 3.23, Cw: 66774.72, Ho: 51.61, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W18 series
	"w18x192": {D: 48.01, Bf: 28.19, Tf: 2.01, Tw: 1.32, A: 368.39, Ix: 83461.29, Sx: 3479.35, Zx: 3929.03, Rx: 15.04, Iy: 13900.00, Sy: 986.45, Zy: 1509.68, Ry: 6.15, J: 109.03, Cw: 1076129.28, Ho: 46.00, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x175": {D: 47.50, Bf: 28.19, Tf: 1.83, Tw: 1.19, A: 335.48, Ix: 75547.10, Sx: 3181.94, Zx: 3584.52, Rx: 15.01, Iy: 12566.45, Sy: 891.61, Zy: 1364.52, Ry: 6.12, J: 83.87, Cw: 967096.32, Ho: 45.67, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x158": {D: 46.99, Bf: 28.19, Tf: 1.65, Tw: 1.09, A: 303.23, Ix: 67966.45, Sx: 2893.55, Zx: 3254.84, Rx: 14.96, Iy: 11316.77, Sy: 803.23, Zy: 1228.39, Ry: 6.10, J: 63.87, Cw: 867096.32, Ho: 45.34, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x143": {D: 46.48, Bf: 27.94, Tf: 1.47, Tw: 0.99, A: 274.19, Ix: 60551.61, Sx: 2605.81, Zx: 2927.74, Rx: 14.86, Iy: 10066.45, Sy: 720.65, Zy: 1101.29, Ry: 6.05, J: 47.10, Cw: 768193.92, Ho: 45.01, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x130": {D: 45.97, Bf: 27.69, Tf: 1.32, Tw: 0.89, A: 249.03, Ix: 54303.23, Sx: 2362.58, Zx: 2651.61, Rx: 14.78, Iy: 8983.87, Sy: 649.68, Zy: 990.32, Ry: 6.00, J: 35.48, Cw: 679354.56, Ho: 44.65, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x119": {D: 45.72, Bf: 27.94, Tf: 1.19, Tw: 0.81, A: 228.39, Ix: 49221.94, Sx: 2153.55, Zx: 2415.48, Rx: 14.68, Iy: 8180.65, Sy: 585.81, Zy: 893.55, Ry: 5.99, J: 26.45, Cw: 611225.28, Ho: 44.53, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x106": {D: 45.21, Bf: 27.69, Tf: 1.04, Tw: 0.74, A: 203.23, Ix: 43140.65, Sx: 1909.68, Zx: 2138.71, Rx: 14.58, Iy: 7127.74, Sy: 514.84, Zy: 785.81, Ry: 5.92, J: 18.39, Cw: 523870.72, Ho: 44.17, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x97": {D: 44.96, Bf: 27.94, Tf: 0.94, Tw: 0.66, A: 185.81, Ix: 38725.81, Sx: 1724.52, Zx: 1927.74, Rx: 14.43, Iy: 6427.74, Sy: 460.00, Zy: 702.58, Ry: 5.87, J: 12.90, Cw: 459354.56, Ho: 44.02, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x86": {D: 45.97, Bf: 27.94, Tf: 0.84, Tw: 0.58, A: 165.16, Ix: 34310.97, Sx: 1493.55, Zx: 1664.52, Rx: 14.43, Iy: 5764.52, Sy: 412.90, Zy: 630.97, Ry: 5.92, J: 9.03, Cw: 406451.52, Ho: 45.13, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x76": {D: 45.21, Bf: 27.94, Tf: 0.74, Tw: 0.53, A: 145.81, Ix: 30312.90, Sx: 1341.29, Zx: 1491.61, Rx: 14.40, Iy: 5101.29, Sy: 365.16, Zy: 556.13, Ry: 5.92, J: 6.45, Cw: 355806.08, Ho: 45.47, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x71": {D: 45.97, Bf: 19.05, Tf: 1.02, Tw: 0.61, A: 136.13, Ix: 29589.68, Sx: 1288.39, Zx: 1434.84, Rx: 14.73, Iy: 2393.55, Sy: 251.61, Zy: 389.68, Ry: 4.19, J: 9.03, Cw: 154838.56, Ho: 44.95, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x65": {D: 45.72, Bf: 19.05, Tf: 0.91, Tw: 0.53, A: 124.52, Ix: 26699.35, Sx: 1169.03, Zx: 1298.71, Rx: 14.63, Iy: 2143.87, Sy: 225.16, Zy: 347.74, Ry: 4.14, J: 6.45, Cw: 135483.84, Ho: 44.81, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x60": {D: 45.72, Bf: 19.05, Tf: 0.84, Tw: 0.51, A: 114.84, Ix: 24554.84, Sx: 1075.48, Zx: 1194.84, Rx: 14.63, Iy: 1977.42, Sy: 207.74, Zy: 320.65, Ry: 4.14, J: 5.16, Cw: 123870.72, Ho: 44.88, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x55": {D: 45.72, Bf: 19.05, Tf: 0.76, Tw: 0.46, A: 105.16, Ix: 22410.32, Sx: 981.94, Zx: 1090.97, Rx: 14.61, Iy: 1811.61, Sy: 190.32, Zy: 293.55, Ry: 4.14, J: 3.87, Cw: 112258.08, Ho: 44.96, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x50": {D: 45.72, Bf: 19.05, Tf: 0.69, Tw: 0.41, A: 95.48, Ix: 20100.00, Sx: 880.65, Zx: 976.13, Rx: 14.50, Iy: 1645.16, Sy: 172.90, Zy: 266.45, Ry: 4.14, J: 2.90, Cw: 100645.44, Ho: 45.03, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x46": {D: 45.97, Bf: 15.24, Tf: 0.79, Tw: 0.46, A: 88.39, Ix: 19393.55, Sx: 844.52, Zx: 936.77, Rx: 14.81, Iy: 973.55, Sy: 127.74, Zy: 199.35, Ry: 3.32, J: 3.55, Cw: 52258.08, Ho: 45.18, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x40": {D: 45.47, Bf: 15.24, Tf: 0.69, Tw: 0.41, A: 76.77, Ix: 16783.87, Sx: 739.35, Zx: 818.71, Rx: 14.78, Iy: 835.48, Sy: 109.68, Zy: 171.61, Ry: 3.30, J: 2.26, Cw: 42580.80, Ho: 45.78, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w18x35": {D: 44.96, Bf: 15.24, Tf: 0.61, Tw: 0.36, A: 67.10, Ix: 14472.26, Sx: 644.52, Zx: 710.97, Rx: 14.68, Iy: 719.35, Sy: 94.52, Zy: 147.74, Ry: 3.28, J: 1.61, Cw: 35483.84, Ho: 45.35, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W16 series
	"w16x100": {D: 43.18, Bf: 25.40, Tf: 1.17, Tw: 0.76, A: 191.61, Ix: 41977.42, Sx: 1945.16, Zx: 2187.10, Rx: 14.81, Iy: 5931.61, Sy: 467.10, Zy: 717.42, Ry: 5.56, J: 22.58, Cw: 419354.56, Ho: 42.01, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x89": {D: 42.67, Bf: 25.40, Tf: 1.02, Tw: 0.66, A: 170.32, Ix: 36810.97, Sx: 1725.81, Zx: 1933.55, Rx: 14.71, Iy: 5185.81, Sy: 408.39, Zy: 626.45, Ry: 5.51, J: 15.48, Cw: 359354.56, Ho: 41.65, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x77": {D: 42.16, Bf: 25.40, Tf: 0.89, Tw: 0.58, A: 147.74, Ix: 31644.52, Sx: 1502.58, Zx: 1680.00, Rx: 14.63, Iy: 4440.00, Sy: 349.68, Zy: 536.77, Ry: 5.49, J: 10.32, Cw: 299354.56, Ho: 41.27, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x67": {D: 41.91, Bf: 25.40, Tf: 0.76, Tw: 0.51, A: 128.39, Ix: 27561.29, Sx: 1316.13, Zx: 1467.74, Rx: 14.63, Iy: 3860.00, Sy: 304.52, Zy: 466.45, Ry: 5.49, J: 6.77, Cw: 250967.04, Ho: 41.15, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x57": {D: 40.89, Bf: 18.03, Tf: 0.89, Tw: 0.53, A: 109.03, Ix: 23996.77, Sx: 1174.19, Zx: 1307.74, Rx: 14.83, Iy: 1811.61, Sy: 201.29, Zy: 312.90, Ry: 4.09, J: 7.10, Cw: 105225.28, Ho: 40.00, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x50": {D: 40.64, Bf: 18.03, Tf: 0.79, Tw: 0.46, A: 95.48, Ix: 21018.71, Sx: 1035.48, Zx: 1151.61, Rx: 14.83, Iy: 1562.58, Sy: 173.55, Zy: 269.68, Ry: 4.04, J: 4.84, Cw: 88387.20, Ho: 39.85, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x45": {D: 40.39, Bf: 17.78, Tf: 0.71, Tw: 0.43, A: 86.45, Ix: 18790.32, Sx: 931.61, Zx: 1035.48, Rx: 14.76, Iy: 1396.77, Sy: 157.42, Zy: 244.52, Ry: 4.01, J: 3.55, Cw: 78064.64, Ho: 39.68, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x40": {D: 40.64, Bf: 17.78, Tf: 0.66, Tw: 0.41, A: 76.77, Ix: 17145.16, Sx: 844.52, Zx: 938.71, Rx: 14.93, Iy: 1314.84, Sy: 148.39, Zy: 230.32, Ry: 4.14, J: 2.90, Cw: 73548.48, Ho: 39.98, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x36": {D: 40.39, Bf: 17.78, Tf: 0.58, Tw: 0.36, A: 69.03, Ix: 15251.61, Sx: 756.77, Zx: 838.71, Rx: 14.86, Iy: 1149.03, Sy: 129.68, Zy: 201.29, Ry: 4.09, J: 2.10, Cw: 63548.48, Ho: 39.81, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x31": {D: 39.88, Bf: 14.02, Tf: 0.61, Tw: 0.38, A: 59.35, Ix: 13357.42, Sx: 670.32, Zx: 739.35, Rx: 15.01, Iy: 635.48, Sy: 90.65, Zy: 142.58, Ry: 3.28, J: 1.94, Cw: 31612.80, Ho: 39.27, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w16x26": {D: 39.37, Bf: 13.97, Tf: 0.51, Tw: 0.30, A: 49.68, Ix: 10883.87, Sx: 553.55, Zx: 607.74, Rx: 14.81, Iy: 518.71, Sy: 74.19, Zy: 116.13, Ry: 3.23, J: 1.13, Cw: 24709.12, Ho: 38.86, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W14 series
	"w14x808": {D: 45.21, Bf: 43.18, Tf: 7.62, Tw: 4.83, A: 1548.39, Ix: 330225.81, Sx: 14612.90, Zx: 16677.42, Rx: 14.61, Iy: 99900.00, Sy: 4627.74, Zy: 7154.84, Ry: 8.03, J: 1619.35, Cw: 6667096.32, Ho: 37.59, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x730": {D: 43.43, Bf: 42.42, Tf: 6.81, Tw: 4.32, A: 1398.71, Ix: 286354.84, Sx: 13193.55, Zx: 15000.00, Rx: 14.30, Iy: 86066.45, Sy: 4058.06, Zy: 6280.65, Ry: 7.85, J: 1258.06, Cw: 5667096.32, Ho: 36.62, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x665": {D: 42.16, Bf: 41.66, Tf: 6.22, Tw: 3.94, A: 1274.19, Ix: 255193.55, Sx: 12109.68, Zx: 13774.19, Rx: 14.17, Iy: 75464.52, Sy: 3622.58, Zy: 5612.90, Ry: 7.70, J: 1019.35, Cw: 4800000.00, Ho: 35.94, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x605": {D: 40.89, Bf: 41.15, Tf: 5.64, Tw: 3.58, A: 1159.35, Ix: 226354.84, Sx: 11070.97, Zx: 12580.65, Rx: 13.97, Iy: 66150.00, Sy: 3216.13, Zy: 4983.87, Ry: 7.55, J: 829.03, Cw: 4100000.00, Ho: 35.25, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x550": {D: 39.62, Bf: 40.39, Tf: 5.13, Tw: 3.25, A: 1054.84, Ix: 199193.55, Sx: 10051.61, Zx: 11419.35, Rx: 13.74, Iy: 57483.87, Sy: 2848.39, Zy: 4415.48, Ry: 7.39, J: 667.74, Cw: 3467096.32, Ho: 34.49, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x500": {D: 38.61, Bf: 39.88, Tf: 4.65, Tw: 2.95, A: 958.06, Ix: 176612.90, Sx: 9148.39, Zx: 10387.10, Rx: 13.57, Iy: 50483.87, Sy: 2532.26, Zy: 3925.81, Ry: 7.26, J: 541.29, Cw: 2967096.32, Ho: 33.96, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x455": {D: 37.59, Bf: 39.37, Tf: 4.24, Tw: 2.69, A: 872.26, Ix: 156612.90, Sx: 8332.26, Zx: 9451.61, Rx: 13.41, Iy: 44150.00, Sy: 2243.87, Zy: 3477.42, Ry: 7.11, J: 438.71, Cw: 2534193.92, Ho: 33.35, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x426": {D: 36.83, Bf: 39.12, Tf: 3.94, Tw: 2.51, A: 816.77, Ix: 145193.55, Sx: 7887.74, Zx: 8935.48, Rx: 13.34, Iy: 40566.45, Sy: 2074.19, Zy: 3215.48, Ry: 7.04, J: 379.35, Cw: 2267096.32, Ho: 32.89, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x398": {D: 36.07, Bf: 38.61, Tf: 3.68, Tw: 2.34, A: 763.23, Ix: 133612.90, Sx: 7406.45, Zx: 8387.10, Rx: 13.23, Iy: 37150.00, Sy: 1925.16, Zy: 2983.87, Ry: 6.98, J: 319.35, Cw: 2000000.00, Ho: 32.39, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x370": {D: 35.56, Bf: 38.35, Tf: 3.40, Tw: 2.16, A: 709.68, Ix: 122612.90, Sx: 6896.77, Zx: 7806.45, Rx: 13.16, Iy: 33900.00, Sy: 1767.74, Zy: 2738.71, Ry: 6.91, J: 267.74, Cw: 1767096.32, Ho: 32.16, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x342": {D: 34.80, Bf: 37.85, Tf: 3.15, Tw: 2.01, A: 656.13, Ix: 112196.77, Sx: 6451.61, Zx: 7287.10, Rx: 13.08, Iy: 30650.00, Sy: 1619.35, Zy: 2509.68, Ry: 6.83, J: 225.81, Cw: 1567096.32, Ho: 31.65, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x311": {D: 34.04, Bf: 37.34, Tf: 2.87, Tw: 1.83, A: 596.13, Ix: 101032.26, Sx: 5935.48, Zx: 6700.00, Rx: 13.01, Iy: 27150.00, Sy: 1454.84, Zy: 2254.84, Ry: 6.76, J: 183.87, Cw: 1367096.32, Ho: 31.17, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x283": {D: 33.53, Bf: 36.83, Tf: 2.62, Tw: 1.68, A: 542.58, Ix: 90612.90, Sx: 5406.45, Zx: 6106.45, Rx: 12.93, Iy: 24233.87, Sy: 1316.13, Zy: 2041.94, Ry: 6.68, J: 150.00, Cw: 1200000.00, Ho: 30.91, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x257": {D: 32.77, Bf: 36.32, Tf: 2.39, Tw: 1.52, A: 492.26, Ix: 81032.26, Sx: 4951.61, Zx: 5580.65, Rx: 12.85, Iy: 21650.00, Sy: 1193.55, Zy: 1848.39, Ry: 6.63, J: 122.58, Cw: 1034193.92, Ho: 30.38, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x233": {D: 32.26, Bf: 35.81, Tf: 2.16, Tw: 1.37, A: 447.10, Ix: 72612.90, Sx: 4503.23, Zx: 5077.42, Rx: 12.75, Iy: 19400.00, Sy: 1083.87, Zy: 1677.42, Ry: 6.58, J: 99.35, Cw: 901290.24, Ho: 30.10, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x211": {D: 31.75, Bf: 35.56, Tf: 1.96, Tw: 1.24, A: 404.52, Ix: 65032.26, Sx: 4096.77, Zx: 4612.90, Rx: 12.68, Iy: 17400.00, Sy: 977.42, Zy: 1512.90, Ry: 6.55, J: 79.35, Cw: 787096.32, Ho: 29.79, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x193": {D: 31.24, Bf: 35.05, Tf: 1.78, Tw: 1.14, A: 370.32, Ix: 58532.26, Sx: 3748.39, Zx: 4219.35, Rx: 12.58, Iy: 15650.00, Sy: 893.55, Zy: 1380.65, Ry: 6.50, J: 64.52, Cw: 687096.32, Ho: 29.46, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x176": {D: 30.73, Bf: 34.80, Tf: 1.63, Tw: 1.04, A: 337.42, Ix: 52612.90, Sx: 3425.81, Zx: 3854.84, Rx: 12.50, Iy: 14150.00, Sy: 813.55, Zy: 1258.06, Ry: 6.48, J: 52.58, Cw: 600000.00, Ho: 29.10, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x159": {D: 30.23, Bf: 34.29, Tf: 1.47, Tw: 0.94, A: 305.16, Ix: 46780.65, Sx: 3096.77, Zx: 3480.65, Rx: 12.40, Iy: 12650.00, Sy: 738.71, Zy: 1141.94, Ry: 6.43, J: 42.58, Cw: 520000.00, Ho: 28.76, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x145": {D: 29.97, Bf: 39.88, Tf: 1.32, Tw: 0.84, A: 278.06, Ix: 42532.26, Sx: 2838.71, Zx: 3193.55, Rx: 12.37, Iy: 11483.87, Sy: 576.13, Zy: 893.55, Ry: 6.43, J: 34.19, Cw: 453548.16, Ho: 28.65, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x132": {D: 29.46, Bf: 39.62, Tf: 1.19, Tw: 0.76, A: 253.55, Ix: 38283.87, Sx: 2600.00, Zx: 2919.35, Rx: 12.30, Iy: 10316.13, Sy: 520.65, Zy: 806.45, Ry: 6.38, J: 27.10, Cw: 399354.56, Ho: 28.27, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x120": {D: 29.21, Bf: 39.37, Tf: 1.07, Tw: 0.69, A: 230.97, Ix: 34533.87, Sx: 2367.74, Zx: 2654.84, Rx: 12.22, Iy: 9316.13, Sy: 473.55, Zy: 733.55, Ry: 6.35, J: 21.29, Cw: 351612.80, Ho: 28.14, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x109": {D: 28.96, Bf: 39.12, Tf: 0.97, Tw: 0.61, A: 209.03, Ix: 31033.87, Sx: 2141.94, Zx: 2400.00, Rx: 12.17, Iy: 8400.00, Sy: 429.68, Zy: 664.52, Ry: 6.33, J: 16.13, Cw: 308387.20, Ho: 27.99, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x99": {D: 28.45, Bf: 38.61, Tf: 0.89, Tw: 0.56, A: 190.32, Ix: 27783.87, Sx: 1954.84, Zx: 2187.10, Rx: 12.09, Iy: 7566.45, Sy: 391.61, Zy: 606.45, Ry: 6.30, J: 12.26, Cw: 270967.04, Ho: 27.56, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x90": {D: 28.19, Bf: 38.35, Tf: 0.79, Tw: 0.51, A: 172.90, Ix: 24866.45, Sx: 1764.52, Zx: 1974.19, Rx: 12.00, Iy: 6816.13, Sy: 355.48, Zy: 550.00, Ry: 6.27, J: 8.71, Cw: 235483.84, Ho: 27.40, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x82": {D: 27.94, Bf: 25.40, Tf: 0.89, Tw: 0.51, A: 157.42, Ix: 22700.00, Sx: 1625.81, Zx: 1816.13, Rx: 12.01, Iy: 3150.00, Sy: 248.39, Zy: 385.81, Ry: 4.47, J: 9.68, Cw: 119354.56, Ho: 27.05, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x74": {D: 27.94, Bf: 25.40, Tf: 0.79, Tw: 0.46, A: 142.58, Ix: 20366.45, Sx: 1458.06, Zx: 1625.81, Rx: 11.96, Iy: 2816.13, Sy: 221.94, Zy: 344.52, Ry: 4.45, J: 6.77, Cw: 104129.28, Ho: 27.15, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x68": {D: 27.69, Bf: 25.40, Tf: 0.74, Tw: 0.41, A: 130.32, Ix: 18533.87, Sx: 1341.29, Zx: 1496.13, Rx: 11.91, Iy: 2566.45, Sy: 202.58, Zy: 314.19, Ry: 4.42, J: 5.16, Cw: 93548.48, Ho: 26.95, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x61": {D: 27.43, Bf: 25.15, Tf: 0.66, Tw: 0.38, A: 117.42, Ix: 16450.00, Sx: 1200.00, Zx: 1335.48, Rx: 11.84, Iy: 2266.45, Sy: 180.65, Zy: 280.65, Ry: 4.39, J: 3.55, Cw: 80000.00, Ho: 26.77, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x53": {D: 33.02, Bf: 20.32, Tf: 0.66, Tw: 0.36, A: 101.29, Ix: 14533.87, Sx: 880.65, Zx: 983.87, Rx: 11.99, Iy: 1066.45, Sy: 105.16, Zy: 164.52, Ry: 3.25, J: 3.55, Cw: 32580.80, Ho: 32.36, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x48": {D: 32.77, Bf: 20.32, Tf: 0.61, Tw: 0.33, A: 91.61, Ix: 13150.00, Sx: 803.23, Zx: 896.77, Rx: 11.96, Iy: 966.45, Sy: 95.48, Zy: 149.68, Ry: 3.25, J: 2.58, Cw: 28387.20, Ho: 32.16, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x43": {D: 32.26, Bf: 20.32, Tf: 0.53, Tw: 0.30, A: 82.58, Ix: 11566.45, Sx: 718.06, Zx: 800.00, Rx: 11.84, Iy: 850.00, Sy: 83.87, Zy: 131.61, Ry: 3.20, J: 2.10, Cw: 24129.28, Ho: 31.73, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x38": {D: 37.85, Bf: 17.02, Tf: 0.51, Tw: 0.30, A: 72.90, Ix: 10650.00, Sx: 563.23, Zx: 628.39, Rx: 12.09, Iy: 434.84, Sy: 51.13, Zy: 80.65, Ry: 2.44, J: 1.61, Cw: 9677.52, Ho: 37.34, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x34": {D: 35.56, Bf: 16.76, Tf: 0.46, Tw: 0.28, A: 65.16, Ix: 9400.00, Sx: 529.03, Zx: 589.03, Rx: 12.01, Iy: 385.81, Sy: 46.13, Zy: 72.26, Ry: 2.44, J: 1.29, Cw: 8387.20, Ho: 35.10, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x30": {D: 35.05, Bf: 16.51, Tf: 0.41, Tw: 0.25, A: 57.42, Ix: 8150.00, Sx: 465.16, Zx: 516.77, Rx: 11.91, Iy: 333.87, Sy: 40.65, Zy: 63.87, Ry: 2.41, J: 0.97, Cw: 7096.32, Ho: 34.64, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x26": {D: 34.80, Bf: 12.70, Tf: 0.46, Tw: 0.25, A: 49.68, Ix: 7233.87, Sx: 415.48, Zx: 462.58, Rx: 12.09, Iy: 186.45, Sy: 29.35, Zy: 46.45, Ry: 1.94, J: 0.97, Cw: 3225.60, Ho: 34.34, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w14x22": {D: 34.29, Bf: 12.70, Tf: 0.38, Tw: 0.23, A: 42.58, Ix: 6066.45, Sx: 354.19, Zx: 393.55, Rx: 11.96, Iy: 155.48, Sy: 24.52, Zy: 38.71, Ry: 1.91, J: 0.65, Cw: 2580.80, Ho: 33.91, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W12 series
	"w12x336": {D: 34.29, Bf: 32.26, Tf: 3.00, Tw: 1.91, A: 644.52, Ix: 93033.87, Sx: 5429.03, Zx: 6193.55, Rx: 12.01, Iy: 23233.87, Sy: 1441.94, Zy: 2225.81, Ry: 6.00, J: 200.00, Cw: 1300000.00, Ho: 31.29, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x305": {D: 33.53, Bf: 31.75, Tf: 2.74, Tw: 1.75, A: 585.81, Ix: 83866.45, Sx: 5006.45, Zx: 5706.45, Rx: 11.96, Iy: 20650.00, Sy: 1300.00, Zy: 2006.45, Ry: 5.94, J: 161.29, Cw: 1134193.92, Ho: 30.79, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x279": {D: 32.77, Bf: 31.50, Tf: 2.49, Tw: 1.60, A: 535.48, Ix: 75700.00, Sx: 4622.58, Zx: 5258.06, Rx: 11.89, Iy: 18400.00, Sy: 1167.74, Zy: 1800.00, Ry: 5.87, J: 130.97, Cw: 1001290.24, Ho: 30.28, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x252": {D: 32.26, Bf: 30.99, Tf: 2.26, Tw: 1.45, A: 483.87, Ix: 67866.45, Sx: 4209.68, Zx: 4787.10, Rx: 11.84, Iy: 16400.00, Sy: 1058.06, Zy: 1632.26, Ry: 5.82, J: 105.81, Cw: 887096.32, Ho: 30.00, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x230": {D: 31.75, Bf: 30.48, Tf: 2.06, Tw: 1.32, A: 441.29, Ix: 61450.00, Sx: 3870.97, Zx: 4403.23, Rx: 11.81, Iy: 14733.87, Sy: 967.74, Zy: 1490.32, Ry: 5.77, J: 86.45, Cw: 787096.32, Ho: 29.69, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x210": {D: 31.24, Bf: 30.23, Tf: 1.88, Tw: 1.19, A: 403.23, Ix: 55533.87, Sx: 3554.84, Zx: 4038.71, Rx: 11.73, Iy: 13233.87, Sy: 875.48, Zy: 1348.39, Ry: 5.72, J: 69.68, Cw: 687096.32, Ho: 29.36, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x190": {D: 30.73, Bf: 29.72, Tf: 1.70, Tw: 1.09, A: 364.52, Ix: 49700.00, Sx: 3235.48, Zx: 3677.42, Rx: 11.68, Iy: 11816.13, Sy: 795.48, Zy: 1225.81, Ry: 5.69, J: 56.13, Cw: 600000.00, Ho: 29.03, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x170": {D: 30.48, Bf: 29.21, Tf: 1.52, Tw: 0.97, A: 326.45, Ix: 43866.45, Sx: 2880.65, Zx: 3270.97, Rx: 11.59, Iy: 10400.00, Sy: 712.90, Zy: 1096.77, Ry: 5.64, J: 43.87, Cw: 520000.00, Ho: 28.96, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x152": {D: 29.97, Bf: 28.96, Tf: 1.35, Tw: 0.87, A: 291.61, Ix: 38700.00, Sx: 2583.87, Zx: 2929.03, Rx: 11.51, Iy: 9233.87, Sy: 637.42, Zy: 980.65, Ry: 5.61, J: 33.55, Cw: 451612.80, Ho: 28.62, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x136": {D: 29.72, Bf: 28.45, Tf: 1.22, Tw: 0.79, A: 260.65, Ix: 34533.87, Sx: 2325.81, Zx: 2635.48, Rx: 11.51, Iy: 8233.87, Sy: 579.35, Zy: 890.32, Ry: 5.61, J: 26.77, Cw: 399354.56, Ho: 28.50, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x120": {D: 29.21, Bf: 28.19, Tf: 1.07, Tw: 0.71, A: 230.32, Ix: 30033.87, Sx: 2058.06, Zx: 2332.26, Rx: 11.40, Iy: 7150.00, Sy: 507.74, Zy: 780.65, Ry: 5.56, J: 19.35, Cw: 339354.56, Ho: 28.14, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x106": {D: 28.70, Bf: 27.94, Tf: 0.94, Tw: 0.61, A: 203.23, Ix: 25866.45, Sx: 1803.23, Zx: 2041.94, Rx: 11.28, Iy: 6150.00, Sy: 440.65, Zy: 677.42, Ry: 5.49, J: 13.55, Cw: 279354.56, Ho: 27.76, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x96": {D: 28.45, Bf: 27.69, Tf: 0.86, Tw: 0.56, A: 184.52, Ix: 23533.87, Sx: 1654.84, Zx: 1867.74, Rx: 11.28, Iy: 5600.00, Sy: 404.52, Zy: 622.58, Ry: 5.51, J: 10.65, Cw: 249354.56, Ho: 27.59, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x87": {D: 28.19, Bf: 27.43, Tf: 0.76, Tw: 0.51, A: 167.10, Ix: 21200.00, Sx: 1503.23, Zx: 1696.77, Rx: 11.25, Iy: 5033.87, Sy: 367.10, Zy: 564.52, Ry: 5.49, J: 7.74, Cw: 219354.56, Ho: 27.43, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x79": {D: 27.94, Bf: 27.18, Tf: 0.69, Tw: 0.47, A: 151.61, Ix: 19200.00, Sx: 1374.19, Zx: 1548.39, Rx: 11.25, Iy: 4566.45, Sy: 336.13, Zy: 516.77, Ry: 5.49, J: 5.81, Cw: 195483.84, Ho: 27.25, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x72": {D: 27.69, Bf: 26.67, Tf: 0.64, Tw: 0.43, A: 138.06, Ix: 17533.87, Sx: 1267.74, Zx: 1425.81, Rx: 11.25, Iy: 4150.00, Sy: 311.61, Zy: 479.35, Ry: 5.49, J: 4.52, Cw: 175483.84, Ho: 27.05, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x65": {D: 27.43, Bf: 26.42, Tf: 0.58, Tw: 0.39, A: 124.52, Ix: 15700.00, Sx: 1145.16, Zx: 1287.10, Rx: 11.23, Iy: 3733.87, Sy: 282.58, Zy: 435.48, Ry: 5.48, J: 3.55, Cw: 155483.84, Ho: 26.85, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x58": {D: 27.18, Bf: 25.40, Tf: 0.53, Tw: 0.36, A: 111.61, Ix: 14033.87, Sx: 1032.26, Zx: 1161.29, Rx: 11.20, Iy: 3350.00, Sy: 264.52, Zy: 406.45, Ry: 5.48, J: 2.58, Cw: 139354.56, Ho: 26.65, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x53": {D: 30.48, Bf: 25.40, Tf: 0.51, Tw: 0.35, A: 101.29, Ix: 12700.00, Sx: 832.26, Zx: 935.48, Rx: 11.20, Iy: 3033.87, Sy: 239.35, Zy: 367.74, Ry: 5.48, J: 2.26, Cw: 126451.52, Ho: 29.97, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x50": {D: 30.23, Bf: 20.32, Tf: 0.64, Tw: 0.38, A: 95.48, Ix: 12200.00, Sx: 807.74, Zx: 906.45, Rx: 11.30, Iy: 1500.00, Sy: 147.74, Zy: 230.97, Ry: 3.96, J: 3.23, Cw: 57096.32, Ho: 29.59, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x45": {D: 29.97, Bf: 20.32, Tf: 0.58, Tw: 0.33, A: 86.45, Ix: 10933.87, Sx: 729.68, Zx: 819.35, Rx: 11.25, Iy: 1350.00, Sy: 133.55, Zy: 208.39, Ry: 3.96, J: 2.26, Cw: 49354.56, Ho: 29.39, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x40": {D: 29.72, Bf: 20.32, Tf: 0.51, Tw: 0.30, A: 76.77, Ix: 9700.00, Sx: 653.55, Zx: 732.90, Rx: 11.23, Iy: 1200.00, Sy: 118.71, Zy: 185.81, Ry: 3.96, J: 1.61, Cw: 42580.80, Ho: 29.21, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x35": {D: 30.48, Bf: 16.51, Tf: 0.53, Tw: 0.30, A: 67.10, Ix: 8866.45, Sx: 581.94, Zx: 653.55, Rx: 11.51, Iy: 633.87, Sy: 76.77, Zy: 120.65, Ry: 3.07, J: 1.61, Cw: 19354.56, Ho: 29.95, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x30": {D: 30.23, Bf: 16.51, Tf: 0.44, Tw: 0.26, A: 57.42, Ix: 7566.45, Sx: 500.65, Zx: 561.29, Rx: 11.46, Iy: 533.87, Sy: 64.52, Zy: 101.29, Ry: 3.05, J: 1.13, Cw: 15483.84, Ho: 29.79, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x26": {D: 29.97, Bf: 16.51, Tf: 0.38, Tw: 0.23, A: 49.68, Ix: 6533.87, Sx: 436.77, Zx: 489.03, Rx: 11.46, Iy: 458.06, Sy: 55.48, Zy: 87.10, Ry: 3.04, J: 0.81, Cw: 12580.80, Ho: 29.59, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x22": {D: 29.72, Bf: 10.16, Tf: 0.43, Tw: 0.26, A: 42.58, Ix: 5700.00, Sx: 384.52, Zx: 430.97, Rx: 11.56, Iy: 166.45, Sy: 32.77, Zy: 51.61, Ry: 1.98, J: 0.81, Cw: 2580.80, Ho: 29.29, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x19": {D: 29.46, Bf: 10.16, Tf: 0.36, Tw: 0.24, A: 36.77, Ix: 4900.00, Sx: 333.55, Zx: 373.55, Rx: 11.53, Iy: 141.29, Sy: 27.87, Zy: 43.87, Ry: 1.96, J: 0.65, Cw: 2096.32, Ho: 29.10, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x16": {D: 29.21, Bf: 10.16, Tf: 0.28, Tw: 0.23, A: 30.65, Ix: 4066.45, Sx: 279.35, Zx: 312.26, Rx: 11.51, Iy: 116.13, Sy: 22.90, Zy: 36.13, Ry: 1.94, J: 0.48, Cw: 1612.80, Ho: 28.93, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w12x14": {D: 28.96, Bf: 10.16, Tf: 0.23, Tw: 0.20, A: 26.45, Ix: 3500.00, Sx: 241.94, Zx: 270.32, Rx: 11.51, Iy: 98.71, Sy: 19.35, Zy: 30.65, Ry: 1.93, J: 0.32, Cw: 1290.24, Ho: 28.73, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W10 series
	"w10x112": {D: 28.70, Bf: 25.65, Tf: 1.24, Tw: 0.76, A: 214.84, Ix: 26700.00, Sx: 1861.29, Zx: 2112.90, Rx: 11.15, Iy: 5900.00, Sy: 460.65, Zy: 716.13, Ry: 5.23, J: 28.39, Cw: 287096.32, Ho: 27.46, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x100": {D: 28.19, Bf: 25.40, Tf: 1.12, Tw: 0.69, A: 191.61, Ix: 23900.00, Sx: 1696.77, Zx: 1925.81, Rx: 11.15, Iy: 5283.87, Sy: 416.13, Zy: 645.16, Ry: 5.23, J: 21.94, Cw: 251612.80, Ho: 27.07, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x88": {D: 27.69, Bf: 25.40, Tf: 0.99, Tw: 0.61, A: 168.39, Ix: 21033.87, Sx: 1519.35, Zx: 1722.58, Rx: 11.15, Iy: 4650.00, Sy: 366.45, Zy: 567.74, Ry: 5.26, J: 16.13, Cw: 215483.84, Ho: 26.70, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x77": {D: 27.18, Bf: 25.15, Tf: 0.87, Tw: 0.53, A: 147.74, Ix: 18300.00, Sx: 1348.39, Zx: 1525.81, Rx: 11.12, Iy: 4066.45, Sy: 323.87, Zy: 501.29, Ry: 5.26, J: 11.29, Cw: 183870.72, Ho: 26.31, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x68": {D: 26.92, Bf: 25.15, Tf: 0.76, Tw: 0.46, A: 130.97, Ix: 15900.00, Sx: 1182.58, Zx: 1335.48, Rx: 11.02, Iy: 3533.87, Sy: 281.29, Zy: 435.48, Ry: 5.20, J: 7.74, Cw: 155483.84, Ho: 26.16, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x60": {D: 26.42, Bf: 25.15, Tf: 0.66, Tw: 0.41, A: 115.48, Ix: 13733.87, Sx: 1041.94, Zx: 1177.42, Rx: 10.90, Iy: 3033.87, Sy: 241.94, Zy: 374.19, Ry: 5.13, J: 5.16, Cw: 127096.32, Ho: 25.76, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x54": {D: 26.16, Bf: 25.15, Tf: 0.59, Tw: 0.37, A: 103.87, Ix: 12200.00, Sx: 933.55, Zx: 1054.84, Rx: 10.85, Iy: 2700.00, Sy: 215.48, Zy: 333.55, Ry: 5.10, J: 3.87, Cw: 111225.28, Ho: 25.57, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x49": {D: 25.91, Bf: 25.15, Tf: 0.56, Tw: 0.34, A: 94.19, Ix: 11200.00, Sx: 864.52, Zx: 976.77, Rx: 10.90, Iy: 2500.00, Sy: 198.71, Zy: 308.39, Ry: 5.15, J: 3.23, Cw: 102580.80, Ho: 25.35, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x45": {D: 25.65, Bf: 20.32, Tf: 0.62, Tw: 0.36, A: 86.45, Ix: 10166.45, Sx: 793.55, Zx: 896.77, Rx: 10.85, Iy: 1283.87, Sy: 126.45, Zy: 197.42, Ry: 3.86, J: 3.55, Cw: 49354.56, Ho: 25.03, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x39": {D: 25.40, Bf: 20.07, Tf: 0.53, Tw: 0.32, A: 75.48, Ix: 8866.45, Sx: 699.35, Zx: 787.10, Rx: 10.85, Iy: 1116.13, Sy: 111.61, Zy: 174.19, Ry: 3.84, J: 2.42, Cw: 41612.80, Ho: 24.87, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x33": {D: 24.89, Bf: 20.07, Tf: 0.43, Tw: 0.29, A: 63.23, Ix: 7400.00, Sx: 595.48, Zx: 670.32, Rx: 10.82, Iy: 933.87, Sy: 93.23, Zy: 145.81, Ry: 3.84, J: 1.61, Cw: 33548.48, Ho: 24.46, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x30": {D: 25.65, Bf: 14.02, Tf: 0.51, Tw: 0.30, A: 57.42, Ix: 6866.45, Sx: 536.13, Zx: 606.45, Rx: 10.95, Iy: 391.61, Sy: 55.81, Zy: 87.74, Ry: 2.61, J: 1.61, Cw: 10000.00, Ho: 25.14, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x26": {D: 25.40, Bf: 14.02, Tf: 0.44, Tw: 0.25, A: 49.68, Ix: 5933.87, Sx: 467.74, Zx: 528.39, Rx: 10.95, Iy: 333.87, Sy: 47.74, Zy: 74.84, Ry: 2.59, J: 1.13, Cw: 8064.64, Ho: 24.96, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x22": {D: 25.15, Bf: 13.97, Tf: 0.36, Tw: 0.22, A: 42.58, Ix: 5033.87, Sx: 400.65, Zx: 451.61, Rx: 10.87, Iy: 283.87, Sy: 40.65, Zy: 63.87, Ry: 2.59, J: 0.81, Cw: 6451.52, Ho: 24.79, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x19": {D: 26.16, Bf: 10.24, Tf: 0.39, Tw: 0.25, A: 36.45, Ix: 4466.45, Sx: 341.94, Zx: 385.81, Rx: 11.07, Iy: 133.87, Sy: 26.13, Zy: 41.29, Ry: 1.91, J: 0.81, Cw: 2580.80, Ho: 25.77, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x17": {D: 25.91, Bf: 10.24, Tf: 0.33, Tw: 0.24, A: 31.61, Ix: 3866.45, Sx: 298.71, Zx: 337.42, Rx: 11.05, Iy: 114.19, Sy: 22.32, Zy: 35.48, Ry: 1.91, J: 0.65, Cw: 2096.32, Ho: 25.58, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x15": {D: 25.65, Bf: 10.16, Tf: 0.27, Tw: 0.23, A: 27.10, Ix: 3300.00, Sx: 257.42, Zx: 290.97, Rx: 11.05, Iy: 96.77, Sy: 19.10, Zy: 30.32, Ry: 1.89, J: 0.48, Cw: 1612.80, Ho: 25.38, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w10x12": {D: 25.27, Bf: 10.16, Tf: 0.21, Tw: 0.19, A: 22.58, Ix: 2700.00, Sx: 213.55, Zx: 241.29, Rx: 10.95, Iy: 79.35, Sy: 15.65, Zy: 24.84, Ry: 1.87, J: 0.32, Cw: 1290.24, Ho: 25.06, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W8 series
	"w8x67": {D: 22.86, Bf: 20.96, Tf: 0.94, Tw: 0.58, A: 128.39, Ix: 9733.87, Sx: 851.61, Zx: 982.58, Rx: 8.71, Iy: 2116.13, Sy: 202.58, Zy: 318.71, Ry: 4.06, J: 13.55, Cw: 79354.56, Ho: 21.92, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x58": {D: 22.35, Bf: 20.83, Tf: 0.81, Tw: 0.51, A: 111.61, Ix: 8366.45, Sx: 748.39, Zx: 861.29, Rx: 8.66, Iy: 1833.87, Sy: 176.13, Zy: 276.77, Ry: 4.06, J: 9.03, Cw: 66774.72, Ho: 21.54, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x48": {D: 21.84, Bf: 20.57, Tf: 0.68, Tw: 0.40, A: 92.26, Ix: 6833.87, Sx: 626.45, Zx: 719.35, Rx: 8.61, Iy: 1500.00, Sy: 145.81, Zy: 229.03, Ry: 4.04, J: 5.48, Cw: 52258.08, Ho: 21.16, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x40": {D: 21.59, Bf: 20.32, Tf: 0.56, Tw: 0.36, A: 76.77, Ix: 5600.00, Sx: 519.35, Zx: 596.77, Rx: 8.53, Iy: 1233.87, Sy: 121.61, Zy: 191.61, Ry: 4.01, J: 3.23, Cw: 41612.80, Ho: 21.03, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x35": {D: 21.34, Bf: 20.32, Tf: 0.49, Tw: 0.31, A: 67.10, Ix: 4900.00, Sx: 459.68, Zx: 527.74, Rx: 8.56, Iy: 1083.87, Sy: 106.77, Zy: 168.39, Ry: 4.04, J: 2.26, Cw: 35483.84, Ho: 20.85, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x31": {D: 20.32, Bf: 20.32, Tf: 0.43, Tw: 0.29, A: 59.35, Ix: 4333.87, Sx: 427.10, Zx: 489.68, Rx: 8.56, Iy: 966.45, Sy: 95.16, Zy: 149.68, Ry: 4.04, J: 1.61, Cw: 31612.80, Ho: 19.89, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x28": {D: 20.57, Bf: 16.51, Tf: 0.52, Tw: 0.29, A: 53.55, Ix: 4000.00, Sx: 389.03, Zx: 446.45, Rx: 8.64, Iy: 466.45, Sy: 56.45, Zy: 88.71, Ry: 2.95, J: 1.77, Cw: 12580.80, Ho: 20.05, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x24": {D: 20.32, Bf: 16.51, Tf: 0.43, Tw: 0.25, A: 46.13, Ix: 3466.45, Sx: 341.94, Zx: 391.61, Rx: 8.64, Iy: 400.00, Sy: 48.39, Zy: 75.81, Ry: 2.95, J: 1.13, Cw: 9677.52, Ho: 19.89, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x21": {D: 21.08, Bf: 13.34, Tf: 0.40, Tw: 0.25, A: 40.32, Ix: 3100.00, Sx: 294.84, Zx: 337.42, Rx: 8.76, Iy: 216.13, Sy: 32.42, Zy: 50.97, Ry: 2.32, J: 0.97, Cw: 3870.72, Ho: 20.68, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x18": {D: 20.83, Bf: 13.34, Tf: 0.33, Tw: 0.23, A: 34.84, Ix: 2633.87, Sx: 253.55, Zx: 290.32, Rx: 8.69, Iy: 183.87, Sy: 27.58, Zy: 43.55, Ry: 2.29, J: 0.65, Cw: 3064.64, Ho: 20.50, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x15": {D: 20.57, Bf: 10.20, Tf: 0.32, Tw: 0.25, A: 28.71, Ix: 2300.00, Sx: 223.87, Zx: 255.48, Rx: 8.94, Iy: 100.65, Sy: 19.74, Zy: 31.29, Ry: 1.87, J: 0.65, Cw: 1290.24, Ho: 20.25, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x13": {D: 20.32, Bf: 10.16, Tf: 0.25, Tw: 0.23, A: 24.52, Ix: 1933.87, Sx: 190.97, Zx: 217.42, Rx: 8.89, Iy: 83.87, Sy: 16.52, Zy: 26.13, Ry: 1.85, J: 0.48, Cw: 967.84, Ho: 20.07, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w8x10": {D: 20.04, Bf: 10.01, Tf: 0.52, Tw: 0.43, A: 19.10, Ix: 1281.99, Sx: 128, Zx: 145, Rx: 8.18, Iy: 86.99, Sy: 17, Zy: 27, Ry: 2.14, J: 1.77, Cw: 8297.76, Ho: 19.5, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W6 series
	"w6x25": {D: 16.00, Bf: 15.01, Tf: 0.46, Tw: 0.32, A: 47.74, Ix: 1316.13, Sx: 164.52, Zx: 193.55, Rx: 5.26, Iy: 283.87, Sy: 37.90, Zy: 59.35, Ry: 2.44, J: 1.29, Cw: 5806.08, Ho: 15.54, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w6x20": {D: 15.49, Bf: 15.01, Tf: 0.36, Tw: 0.26, A: 38.39, Ix: 1033.87, Sx: 133.55, Zx: 156.77, Rx: 5.18, Iy: 224.52, Sy: 29.90, Zy: 46.77, Ry: 2.41, J: 0.81, Cw: 4193.92, Ho: 15.13, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w6x16": {D: 15.24, Bf: 10.16, Tf: 0.40, Tw: 0.26, A: 30.65, Ix: 900.00, Sx: 118.06, Zx: 137.42, Rx: 5.41, Iy: 83.87, Sy: 16.52, Zy: 26.13, Ry: 1.65, J: 0.81, Cw: 967.84, Ho: 14.84, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w6x15": {D: 14.99, Bf: 15.01, Tf: 0.28, Tw: 0.23, A: 28.71, Ix: 766.45, Sx: 102.26, Zx: 119.35, Rx: 5.16, Iy: 166.45, Sy: 22.19, Zy: 34.52, Ry: 2.41, J: 0.48, Cw: 2903.04, Ho: 14.71, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w6x12": {D: 15.24, Bf: 10.16, Tf: 0.28, Tw: 0.23, A: 22.90, Ix: 666.45, Sx: 87.42, Zx: 101.94, Rx: 5.38, Iy: 66.45, Sy: 13.10, Zy: 20.65, Ry: 1.70, J: 0.48, Cw: 645.44, Ho: 14.96, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w6x9": {D: 14.99, Bf: 10.01, Tf: 0.55, Tw: 0.43, A: 17.29, Ix: 483.87, Sx: 65.81, Zx: 76.77, Rx: 5.28, Iy: 50.00, Sy: 10.10, Zy: 15.81, Ry: 1.70, J: 0.32, Cw: 387.20, Ho: 14.51, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W5 series
	"w5x19": {D: 12.95, Bf: 12.78, Tf: 1.09, Tw: 0.69, A: 35.87, Ix: 1094.69, Sx: 167, Zx: 190, Rx: 5.51, Iy: 380.02, Sy: 59, Zy: 91, Ry: 3.25, J: 13.15, Cw: 13668.48, Ho: 12.52, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
	"w5x16": {D: 12.73, Bf: 12.70, Tf: 0.91, Tw: 0.61, A: 30.39, Ix: 890.74, Sx: 140, Zx: 158, Rx: 5.41, Iy: 312.59, Sy: 49, Zy: 75, Ry: 3.2, J: 7.99, Cw: 10902.56, Ho: 12.34, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},

	// W4 series
	"w4x13": {D: 10.57, Bf: 10.31, Tf: 0.88, Tw: 0.71, A: 24.71, Ix: 470.34, Sx: 89, Zx: 103, Rx: 4.37, Iy: 160.67, Sy: 31, Zy: 48, Ry: 2.54, J: 6.29, Cw: 3759.50, Ho: 10.32, Fy: aisc.DefaultFy, Fu: aisc.DefaultFu, E: aisc.DefaultE},
}
